package ui

import (
	"strings"
	"testing"

	"heartscope/domain/report"
)

func TestRenderChartSVG_Bar(t *testing.T) {
	spec := report.ChartSpec{
		ID:         "target-counts",
		Kind:       report.ChartBar,
		Title:      "People with heart disease vs without",
		XLabel:     "Condition",
		YLabel:     "Number of People",
		Categories: []string{"Disease", "No Disease"},
		Series:     []report.Series{{Name: "Number of People", Values: []float64{165, 138}}},
	}

	out := string(RenderChartSVG(spec))

	if !strings.HasPrefix(out, `<svg class="chart"`) || !strings.HasSuffix(out, "</svg>") {
		t.Fatal("Output is not a complete svg element")
	}
	if got := strings.Count(out, "<rect"); got != 2 {
		t.Errorf("Expected 2 bars, got %d rects", got)
	}
	if !strings.Contains(out, "Disease") {
		t.Error("Category labels missing")
	}
	if !strings.Contains(out, "Condition") {
		t.Error("X axis label missing")
	}
}

func TestRenderChartSVG_Deterministic(t *testing.T) {
	spec := report.ChartSpec{
		Kind:       report.ChartBar,
		Title:      "t",
		Categories: []string{"a", "b"},
		Series:     []report.Series{{Name: "n", Values: []float64{1, 2}}},
	}
	if RenderChartSVG(spec) != RenderChartSVG(spec) {
		t.Error("Identical specs must render identical SVG")
	}
}

func TestRenderChartSVG_GroupedLegend(t *testing.T) {
	spec := report.ChartSpec{
		Kind:       report.ChartGroupedBar,
		Title:      "by group",
		Categories: []string{"Female", "Male"},
		Series: []report.Series{
			{Name: "Disease", Values: []float64{30, 90}},
			{Name: "No Disease", Values: []float64{40, 50}},
		},
	}

	out := string(RenderChartSVG(spec))

	// 4 bars plus 2 legend swatches.
	if got := strings.Count(out, "<rect"); got != 6 {
		t.Errorf("Expected 6 rects (bars + legend), got %d", got)
	}
	if !strings.Contains(out, `class="legend"`) {
		t.Error("Multi-series chart should carry a legend")
	}
}

func TestRenderChartSVG_HistogramOverlay(t *testing.T) {
	spec := report.ChartSpec{
		Kind:       report.ChartHistogram,
		Title:      "ages",
		Categories: []string{"20–30", "30–40", "40–50"},
		XValues:    []float64{20, 35, 50},
		Series: []report.Series{
			{Name: "Frequency", Values: []float64{5, 9, 3}},
			{Name: "density", Values: []float64{0.01, 0.03, 0.02}},
		},
	}

	out := string(RenderChartSVG(spec))

	if got := strings.Count(out, "<rect"); got != 3 {
		t.Errorf("Overlay series must not add bars: got %d rects", got)
	}
	if !strings.Contains(out, "<polyline") {
		t.Error("Density overlay should render as a polyline")
	}
}

func TestRenderChartSVG_Density(t *testing.T) {
	spec := report.ChartSpec{
		Kind:    report.ChartDensity,
		Title:   "bp",
		XValues: []float64{100, 120, 140, 160},
		Series: []report.Series{
			{Name: "Female", Values: []float64{0.01, 0.04, 0.02, 0.01}},
			{Name: "Male", Values: []float64{0.02, 0.03, 0.03, 0.01}},
		},
	}

	out := string(RenderChartSVG(spec))

	if got := strings.Count(out, "<polygon"); got != 2 {
		t.Errorf("Expected one filled polygon per group, got %d", got)
	}
	if !strings.Contains(out, "Female") || !strings.Contains(out, "Male") {
		t.Error("Group names missing from legend")
	}
}

func TestRenderChartSVG_EscapesTitles(t *testing.T) {
	spec := report.ChartSpec{
		Kind:       report.ChartBar,
		Title:      `<script>alert("x")</script>`,
		Categories: []string{"a"},
		Series:     []report.Series{{Name: "n", Values: []float64{1}}},
	}

	out := string(RenderChartSVG(spec))
	if strings.Contains(out, "<script>") {
		t.Error("Title must be escaped")
	}
}
