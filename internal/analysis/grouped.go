package analysis

import (
	"sort"
	"strconv"

	"heartscope/domain/table"
)

// GroupSeries is the per-group count vector of a grouped frequency table.
type GroupSeries struct {
	Name   string `json:"name"`
	Counts []int  `json:"counts"`
}

// GroupedCounts is a two-way frequency table: Categories along the
// x-axis, one Series per value of the grouping column. Ordering is
// deterministic (descending total, ties by label) so identical inputs
// render identical charts.
type GroupedCounts struct {
	X          string        `json:"x"`
	Hue        string        `json:"hue"`
	Categories []string      `json:"categories"`
	Series     []GroupSeries `json:"series"`
}

// GroupedValueCounts computes counts of the x column split by the hue
// column. Rows with a missing cell in either column are skipped.
func GroupedValueCounts(t table.Table, x, hue string) (GroupedCounts, bool) {
	xCells, okX := t.Column(x)
	hueCells, okH := t.Column(hue)
	if !okX || !okH {
		return GroupedCounts{}, false
	}

	joint := make(map[string]map[string]int)
	xTotals := make(map[string]int)
	hueTotals := make(map[string]int)
	for i := range xCells {
		xv, hv := xCells[i], hueCells[i]
		if xv == table.Missing || hv == table.Missing {
			continue
		}
		if joint[xv] == nil {
			joint[xv] = make(map[string]int)
		}
		joint[xv][hv]++
		xTotals[xv]++
		hueTotals[hv]++
	}

	categories := orderedKeys(xTotals)
	hues := orderedKeys(hueTotals)

	series := make([]GroupSeries, len(hues))
	for i, hv := range hues {
		counts := make([]int, len(categories))
		for j, xv := range categories {
			counts[j] = joint[xv][hv]
		}
		series[i] = GroupSeries{Name: hv, Counts: counts}
	}

	return GroupedCounts{X: x, Hue: hue, Categories: categories, Series: series}, true
}

// orderedKeys sorts map keys by descending count, ties by label.
func orderedKeys(totals map[string]int) []string {
	keys := make([]string, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if totals[keys[i]] != totals[keys[j]] {
			return totals[keys[i]] > totals[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}

// GroupedFloats splits a numeric column's values by the distinct
// labels of a grouping column, preserving the grouping column's
// deterministic order. Used for per-group density curves.
func GroupedFloats(t table.Table, valueCol, groupCol string) (groups []string, values [][]float64, ok bool) {
	vCells, okV := t.Column(valueCol)
	gCells, okG := t.Column(groupCol)
	if !okV || !okG {
		return nil, nil, false
	}

	byGroup := make(map[string][]float64)
	totals := make(map[string]int)
	for i := range vCells {
		gv := gCells[i]
		if gv == table.Missing || vCells[i] == table.Missing {
			continue
		}
		v, err := parseFloat(vCells[i])
		if err != nil {
			continue
		}
		byGroup[gv] = append(byGroup[gv], v)
		totals[gv]++
	}

	groups = orderedKeys(totals)
	values = make([][]float64, len(groups))
	for i, g := range groups {
		values[i] = byGroup[g]
	}
	return groups, values, true
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
