package report

import (
	"fmt"

	"heartscope/domain/report"
	"heartscope/domain/table"
	"heartscope/internal/analysis"
)

// barChart converts value counts into a single-series bar spec.
// displayNames optionally relabels categories for the axis (the table
// itself keeps the raw values, e.g. numeric cp codes).
func barChart(id, title, xLabel, yLabel string, counts table.ValueCounts, displayNames map[string]string) report.ChartSpec {
	categories := make([]string, len(counts))
	values := make([]float64, len(counts))
	for i, p := range counts {
		categories[i] = displayName(p.Value, displayNames)
		values[i] = float64(p.Count)
	}
	return report.ChartSpec{
		ID:         id,
		Kind:       report.ChartBar,
		Title:      title,
		XLabel:     xLabel,
		YLabel:     yLabel,
		Categories: categories,
		Series:     []report.Series{{Name: yLabel, Values: values}},
	}
}

// groupedBarChart converts a two-way frequency table into a grouped
// bar spec with one series per hue value.
func groupedBarChart(id, title, xLabel, yLabel string, gc analysis.GroupedCounts, displayNames map[string]string) report.ChartSpec {
	categories := make([]string, len(gc.Categories))
	for i, c := range gc.Categories {
		categories[i] = displayName(c, displayNames)
	}
	series := make([]report.Series, len(gc.Series))
	for i, s := range gc.Series {
		values := make([]float64, len(s.Counts))
		for j, n := range s.Counts {
			values[j] = float64(n)
		}
		series[i] = report.Series{Name: s.Name, Values: values}
	}
	return report.ChartSpec{
		ID:         id,
		Kind:       report.ChartGroupedBar,
		Title:      title,
		XLabel:     xLabel,
		YLabel:     yLabel,
		Categories: categories,
		Series:     series,
	}
}

// histogramChart converts bin counts (plus an optional density overlay)
// into a histogram spec. Categories carry the bin ranges.
func histogramChart(id, title, xLabel, yLabel string, h analysis.HistogramData, overlay analysis.DensityCurve) report.ChartSpec {
	categories := make([]string, len(h.Counts))
	values := make([]float64, len(h.Counts))
	for i, n := range h.Counts {
		categories[i] = fmt.Sprintf("%.0f–%.0f", h.Edges[i], h.Edges[i+1])
		values[i] = float64(n)
	}
	spec := report.ChartSpec{
		ID:         id,
		Kind:       report.ChartHistogram,
		Title:      title,
		XLabel:     xLabel,
		YLabel:     yLabel,
		Categories: categories,
		Series:     []report.Series{{Name: yLabel, Values: values}},
	}
	if len(overlay.Density) > 0 {
		spec.Series = append(spec.Series, report.Series{Name: "density", Values: overlay.Density})
		spec.XValues = overlay.X
	}
	return spec
}

// densityChart converts per-group KDE curves sharing one grid into a
// density spec. Returns false when no group produced a curve.
func densityChart(id, title, xLabel, yLabel string, groups []analysis.DensityGroup) (report.ChartSpec, bool) {
	if len(groups) == 0 {
		return report.ChartSpec{}, false
	}
	spec := report.ChartSpec{
		ID:      id,
		Kind:    report.ChartDensity,
		Title:   title,
		XLabel:  xLabel,
		YLabel:  yLabel,
		XValues: groups[0].Curve.X,
	}
	for _, g := range groups {
		spec.Series = append(spec.Series, report.Series{Name: g.Name, Values: g.Curve.Density})
	}
	return spec, true
}

// withFixedOrder reorders counts into the given label order, appending
// zero-count entries for labels absent from the data. Used where the
// chart axis must always show every category (e.g. both genders even
// when one has no rows).
func withFixedOrder(counts table.ValueCounts, labels ...string) table.ValueCounts {
	out := make(table.ValueCounts, 0, len(labels))
	for _, l := range labels {
		out = append(out, table.CountPair{Value: l, Count: counts.Get(l)})
	}
	return out
}

func displayName(value string, names map[string]string) string {
	if names == nil {
		return value
	}
	if n, ok := names[value]; ok {
		return n
	}
	return value
}
