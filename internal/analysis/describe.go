package analysis

import (
	"fmt"
	"strconv"

	"heartscope/domain/table"

	"github.com/montanaflynn/stats"
)

// DescribeStatistics lists the row labels of the describe table, in
// output order: numeric summary rows first, then the categorical ones.
var DescribeStatistics = []string{
	"count", "missing", "mean", "std", "min", "25%", "50%", "75%", "max",
	"unique", "top", "freq",
}

// notApplicable fills describe cells that do not apply to a column's type.
const notApplicable = "—"

// DescribeTable holds descriptive statistics: one row per statistic,
// one column per input column.
type DescribeTable struct {
	Statistics []string   `json:"statistics"`
	Columns    []string   `json:"columns"`
	Cells      [][]string `json:"cells"` // indexed [statistic][column]
}

// Describe computes count, central tendency, dispersion and extremes
// for numeric columns, and cardinality/mode information for the rest.
// Every column of the input appears in the output.
func Describe(t table.Table) DescribeTable {
	cols := t.Headers()
	out := DescribeTable{
		Statistics: append([]string(nil), DescribeStatistics...),
		Columns:    cols,
		Cells:      make([][]string, len(DescribeStatistics)),
	}
	for i := range out.Cells {
		out.Cells[i] = make([]string, len(cols))
	}

	for j, col := range cols {
		column := describeColumn(t, col)
		for i, stat := range DescribeStatistics {
			out.Cells[i][j] = column[stat]
		}
	}
	return out
}

// describeColumn computes the describe rows for one column.
func describeColumn(t table.Table, name string) map[string]string {
	cells, _ := t.Column(name)
	nonMissing := 0
	for _, c := range cells {
		if c != table.Missing {
			nonMissing++
		}
	}

	row := make(map[string]string, len(DescribeStatistics))
	for _, s := range DescribeStatistics {
		row[s] = notApplicable
	}
	row["count"] = strconv.Itoa(nonMissing)
	row["missing"] = strconv.Itoa(len(cells) - nonMissing)

	if t.IsNumericColumn(name) {
		values, _ := t.FloatColumn(name)
		if len(values) > 0 {
			mean, _ := stats.Mean(values)
			stdDev, _ := stats.StandardDeviationSample(values)
			minV, _ := stats.Min(values)
			maxV, _ := stats.Max(values)
			q25, _ := stats.Percentile(values, 25)
			median, _ := stats.Median(values)
			q75, _ := stats.Percentile(values, 75)

			row["mean"] = formatStat(mean)
			row["std"] = formatStat(stdDev)
			row["min"] = formatStat(minV)
			row["25%"] = formatStat(q25)
			row["50%"] = formatStat(median)
			row["75%"] = formatStat(q75)
			row["max"] = formatStat(maxV)
		}
		return row
	}

	// Categorical column: frequency table summary.
	counts, _ := t.CountValues(name)
	row["unique"] = strconv.Itoa(len(counts))
	if len(counts) > 0 {
		row["top"] = counts[0].Value
		row["freq"] = strconv.Itoa(counts[0].Count)
	}
	return row
}

func formatStat(v float64) string {
	return fmt.Sprintf("%.3f", v)
}

// ColumnInfo summarizes one column for the dataset-info block.
type ColumnInfo struct {
	Name     string `json:"name"`
	DataType string `json:"data_type"` // "numeric" or "categorical"
	NonNull  int    `json:"non_null"`
	Unique   int    `json:"unique"`
}

// InfoTable builds the per-column type summary shown in the dataset
// info section.
func InfoTable(t table.Table) []ColumnInfo {
	out := make([]ColumnInfo, 0, t.NumCols())
	for _, name := range t.Headers() {
		cells, _ := t.Column(name)
		nonNull := 0
		seen := make(map[string]bool)
		for _, c := range cells {
			if c == table.Missing {
				continue
			}
			nonNull++
			seen[c] = true
		}
		dtype := "categorical"
		if t.IsNumericColumn(name) {
			dtype = "numeric"
		}
		out = append(out, ColumnInfo{
			Name:     name,
			DataType: dtype,
			NonNull:  nonNull,
			Unique:   len(seen),
		})
	}
	return out
}
