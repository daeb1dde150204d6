// Package recode rewrites integer-coded categorical columns to
// human-readable labels. The mapping runs exactly once per column: a
// column whose values are no longer numeric is passed through
// unchanged, so applying the recoder twice is a no-op.
package recode

import (
	"heartscope/domain/table"
)

// Column label dictionaries. Codes outside a dictionary's domain map
// to the missing marker and are counted as malformed.
var (
	SexLabels = map[string]string{
		"0": "Female",
		"1": "Male",
	}
	TargetLabels = map[string]string{
		"0": "No Disease",
		"1": "Disease",
	}
	FBSLabels = map[string]string{
		"0": "≤ 120 mg/dL",
		"1": "> 120 mg/dL",
	}
)

// codedColumns lists the recoded columns in a fixed order.
var codedColumns = []struct {
	name   string
	labels map[string]string
}{
	{"sex", SexLabels},
	{"target", TargetLabels},
	{"fbs", FBSLabels},
}

// Result carries the recoded table plus per-column counts of codes
// that had no label mapping.
type Result struct {
	Table          table.Table
	MalformedCodes map[string]int
}

// Apply recodes sex, target and fbs from integer codes to labels and
// returns a new table; the input is not modified. Columns that are
// absent, or whose value domain is already non-numeric, are skipped.
func Apply(t table.Table) Result {
	malformed := make(map[string]int)

	for _, col := range codedColumns {
		if !t.HasColumn(col.name) {
			continue
		}
		// Domain guard: only numeric-coded columns are remapped.
		if !t.IsNumericColumn(col.name) {
			continue
		}

		cells, _ := t.Column(col.name)
		mapped := make([]string, len(cells))
		bad := 0
		for i, c := range cells {
			if c == table.Missing {
				mapped[i] = table.Missing
				continue
			}
			label, ok := col.labels[c]
			if !ok {
				mapped[i] = table.Missing
				bad++
				continue
			}
			mapped[i] = label
		}

		if next, ok := t.WithColumn(col.name, mapped); ok {
			t = next
		}
		if bad > 0 {
			malformed[col.name] = bad
		}
	}

	return Result{Table: t, MalformedCodes: malformed}
}
