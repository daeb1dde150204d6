// Package table holds the in-memory tabular dataset model. A Table is
// built once by the loader and treated as immutable afterwards: every
// transformation returns a new Table, so re-running a pipeline stage is
// always safe.
package table

import (
	"sort"
	"strconv"
	"strings"
)

// Missing is the marker stored for cells whose value could not be
// resolved (empty input or a category code with no label mapping).
const Missing = ""

// Table is an ordered set of named columns over row-major string cells.
// All cells are strings at this layer; numeric interpretation happens
// on demand via FloatColumn.
type Table struct {
	headers []string
	rows    [][]string
	index   map[string]int
}

// New builds a Table from a header row and data rows. Short rows are
// padded with the missing marker so every row has len(headers) cells.
func New(headers []string, rows [][]string) Table {
	hs := make([]string, len(headers))
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		hs[i] = strings.TrimSpace(h)
		index[hs[i]] = i
	}

	rs := make([][]string, len(rows))
	for i, row := range rows {
		r := make([]string, len(hs))
		for j := range hs {
			if j < len(row) {
				r[j] = strings.TrimSpace(row[j])
			} else {
				r[j] = Missing
			}
		}
		rs[i] = r
	}

	return Table{headers: hs, rows: rs, index: index}
}

// Headers returns a copy of the column names in file order.
func (t Table) Headers() []string {
	out := make([]string, len(t.headers))
	copy(out, t.headers)
	return out
}

// NumRows returns the number of data rows.
func (t Table) NumRows() int { return len(t.rows) }

// NumCols returns the number of columns.
func (t Table) NumCols() int { return len(t.headers) }

// HasColumn reports whether a column with the given name exists.
func (t Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns a copy of the named column's cells. The second return
// is false when the column does not exist.
func (t Table) Column(name string) ([]string, bool) {
	idx, ok := t.index[name]
	if !ok {
		return nil, false
	}
	out := make([]string, len(t.rows))
	for i, row := range t.rows {
		out[i] = row[idx]
	}
	return out, true
}

// FloatColumn parses the named column as float64 values. Cells that are
// missing or non-numeric are skipped; the returned slice may therefore
// be shorter than NumRows.
func (t Table) FloatColumn(name string) ([]float64, bool) {
	cells, ok := t.Column(name)
	if !ok {
		return nil, false
	}
	out := make([]float64, 0, len(cells))
	for _, c := range cells {
		if c == Missing {
			continue
		}
		if v, err := strconv.ParseFloat(c, 64); err == nil {
			out = append(out, v)
		}
	}
	return out, true
}

// Row returns a copy of row i.
func (t Table) Row(i int) []string {
	out := make([]string, len(t.headers))
	copy(out, t.rows[i])
	return out
}

// Head returns the first n rows (fewer when the table is smaller).
func (t Table) Head(n int) [][]string {
	if n > len(t.rows) {
		n = len(t.rows)
	}
	out := make([][]string, n)
	for i := 0; i < n; i++ {
		out[i] = t.Row(i)
	}
	return out
}

// Tail returns the last n rows in original order.
func (t Table) Tail(n int) [][]string {
	if n > len(t.rows) {
		n = len(t.rows)
	}
	out := make([][]string, n)
	for i := 0; i < n; i++ {
		out[i] = t.Row(len(t.rows) - n + i)
	}
	return out
}

// WithColumn returns a new Table with the named column replaced by the
// given values. The receiver is not modified. values must have exactly
// NumRows entries; the second return is false otherwise or when the
// column does not exist.
func (t Table) WithColumn(name string, values []string) (Table, bool) {
	idx, ok := t.index[name]
	if !ok || len(values) != len(t.rows) {
		return t, false
	}
	rows := make([][]string, len(t.rows))
	for i, row := range t.rows {
		r := make([]string, len(row))
		copy(r, row)
		r[idx] = values[i]
		rows[i] = r
	}
	return Table{headers: t.headers, rows: rows, index: t.index}, true
}

// IsNumericColumn reports whether every non-missing cell of the named
// column parses as a number. Used as the recoding precondition: a
// column that already carries label strings is not numeric and must
// not be mapped again.
func (t Table) IsNumericColumn(name string) bool {
	cells, ok := t.Column(name)
	if !ok {
		return false
	}
	seen := false
	for _, c := range cells {
		if c == Missing {
			continue
		}
		if _, err := strconv.ParseFloat(c, 64); err != nil {
			return false
		}
		seen = true
	}
	return seen
}

// CountPair is one category with its frequency.
type CountPair struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// ValueCounts is an ordered frequency table: highest count first,
// ties broken by label so output is deterministic.
type ValueCounts []CountPair

// Get returns the count for a value, zero when absent.
func (vc ValueCounts) Get(value string) int {
	for _, p := range vc {
		if p.Value == value {
			return p.Count
		}
	}
	return 0
}

// Total returns the sum of all counts.
func (vc ValueCounts) Total() int {
	total := 0
	for _, p := range vc {
		total += p.Count
	}
	return total
}

// CountValues computes the frequency of each distinct non-missing cell
// in the named column.
func (t Table) CountValues(name string) (ValueCounts, bool) {
	cells, ok := t.Column(name)
	if !ok {
		return nil, false
	}
	freq := make(map[string]int)
	for _, c := range cells {
		if c == Missing {
			continue
		}
		freq[c]++
	}
	out := make(ValueCounts, 0, len(freq))
	for v, n := range freq {
		out = append(out, CountPair{Value: v, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	return out, true
}
