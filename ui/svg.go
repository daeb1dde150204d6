package ui

import (
	"fmt"
	"html/template"
	"strings"

	"heartscope/domain/report"
)

// Fixed chart canvas. Identical specs always yield identical SVG.
const (
	chartWidth   = 680
	chartHeight  = 340
	marginLeft   = 56
	marginRight  = 16
	marginTop    = 36
	marginBottom = 64
)

// seriesPalette cycles across a chart's series.
var seriesPalette = []string{"#3B82F6", "#F97316", "#10B981", "#8B5CF6"}

// RenderChartSVG turns a chart spec into inline SVG markup.
func RenderChartSVG(spec report.ChartSpec) template.HTML {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg class="chart" viewBox="0 0 %d %d" role="img" aria-label="%s">`,
		chartWidth, chartHeight, template.HTMLEscapeString(spec.Title))
	fmt.Fprintf(&b, `<text x="%d" y="20" class="chart-title">%s</text>`,
		chartWidth/2, template.HTMLEscapeString(spec.Title))

	switch spec.Kind {
	case report.ChartBar, report.ChartGroupedBar, report.ChartHistogram:
		renderBars(&b, spec)
	case report.ChartDensity:
		renderDensity(&b, spec)
	}

	axisLabels(&b, spec)
	b.WriteString(`</svg>`)
	return template.HTML(b.String())
}

func plotArea() (w, h float64) {
	return float64(chartWidth - marginLeft - marginRight),
		float64(chartHeight - marginTop - marginBottom)
}

func renderBars(b *strings.Builder, spec report.ChartSpec) {
	plotW, plotH := plotArea()
	nCats := len(spec.Categories)
	if nCats == 0 {
		return
	}

	// Only count series are drawn as bars; a density overlay on a
	// histogram rides on top as a polyline.
	barSeries := spec.Series
	var overlay *report.Series
	if spec.Kind == report.ChartHistogram && len(spec.Series) > 1 {
		barSeries = spec.Series[:1]
		overlay = &spec.Series[1]
	}

	maxV := 0.0
	for _, s := range barSeries {
		for _, v := range s.Values {
			if v > maxV {
				maxV = v
			}
		}
	}
	if maxV == 0 {
		maxV = 1
	}

	slotW := plotW / float64(nCats)
	gap := slotW * 0.15
	if spec.Kind == report.ChartHistogram {
		gap = slotW * 0.02
	}
	barW := (slotW - 2*gap) / float64(len(barSeries))

	for si, s := range barSeries {
		color := seriesPalette[si%len(seriesPalette)]
		for ci, v := range s.Values {
			if ci >= nCats {
				break
			}
			h := v / maxV * plotH
			x := float64(marginLeft) + float64(ci)*slotW + gap + float64(si)*barW
			y := float64(marginTop) + plotH - h
			fmt.Fprintf(b, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"><title>%s: %.0f</title></rect>`,
				x, y, barW, h, color, template.HTMLEscapeString(spec.Categories[ci]), v)
		}
	}

	if overlay != nil && len(overlay.Values) > 1 {
		renderOverlayCurve(b, overlay.Values, plotW, plotH)
	}

	// Category tick labels; thin out when crowded.
	step := 1
	if nCats > 12 {
		step = nCats / 12
	}
	for ci := 0; ci < nCats; ci += step {
		x := float64(marginLeft) + (float64(ci)+0.5)*slotW
		fmt.Fprintf(b, `<text x="%.1f" y="%d" class="tick" transform="rotate(18 %.1f %d)">%s</text>`,
			x, chartHeight-marginBottom+16, x, chartHeight-marginBottom+16,
			template.HTMLEscapeString(spec.Categories[ci]))
	}

	yAxisTicks(b, maxV, plotH)
	if len(barSeries) > 1 {
		legend(b, barSeries)
	}
}

// renderOverlayCurve draws a density curve rescaled to the plot height.
func renderOverlayCurve(b *strings.Builder, values []float64, plotW, plotH float64) {
	maxD := 0.0
	for _, v := range values {
		if v > maxD {
			maxD = v
		}
	}
	if maxD == 0 {
		return
	}
	var pts []string
	for i, v := range values {
		x := float64(marginLeft) + float64(i)/float64(len(values)-1)*plotW
		y := float64(marginTop) + plotH - v/maxD*plotH
		pts = append(pts, fmt.Sprintf("%.1f,%.1f", x, y))
	}
	fmt.Fprintf(b, `<polyline points="%s" fill="none" stroke="#1F2937" stroke-width="1.5"/>`, strings.Join(pts, " "))
}

func renderDensity(b *strings.Builder, spec report.ChartSpec) {
	plotW, plotH := plotArea()
	if len(spec.XValues) < 2 {
		return
	}

	maxD := 0.0
	for _, s := range spec.Series {
		for _, v := range s.Values {
			if v > maxD {
				maxD = v
			}
		}
	}
	if maxD == 0 {
		return
	}

	for si, s := range spec.Series {
		color := seriesPalette[si%len(seriesPalette)]
		n := len(s.Values)
		if n < 2 {
			continue
		}
		var pts []string
		baseY := float64(marginTop) + plotH
		pts = append(pts, fmt.Sprintf("%.1f,%.1f", float64(marginLeft), baseY))
		for i, v := range s.Values {
			x := float64(marginLeft) + float64(i)/float64(n-1)*plotW
			y := float64(marginTop) + plotH - v/maxD*plotH
			pts = append(pts, fmt.Sprintf("%.1f,%.1f", x, y))
		}
		pts = append(pts, fmt.Sprintf("%.1f,%.1f", float64(marginLeft)+plotW, baseY))
		fmt.Fprintf(b, `<polygon points="%s" fill="%s" fill-opacity="0.25" stroke="%s" stroke-width="1.5"/>`,
			strings.Join(pts, " "), color, color)
	}

	// X-axis range ticks from the shared grid.
	lo, hi := spec.XValues[0], spec.XValues[len(spec.XValues)-1]
	for i := 0; i <= 4; i++ {
		frac := float64(i) / 4
		x := float64(marginLeft) + frac*plotW
		fmt.Fprintf(b, `<text x="%.1f" y="%d" class="tick">%.0f</text>`,
			x, chartHeight-marginBottom+16, lo+frac*(hi-lo))
	}

	legend(b, spec.Series)
}

func yAxisTicks(b *strings.Builder, maxV, plotH float64) {
	for i := 0; i <= 4; i++ {
		frac := float64(i) / 4
		y := float64(marginTop) + plotH - frac*plotH
		fmt.Fprintf(b, `<line x1="%d" y1="%.1f" x2="%d" y2="%.1f" class="gridline"/>`,
			marginLeft, y, chartWidth-marginRight, y)
		fmt.Fprintf(b, `<text x="%d" y="%.1f" class="tick tick-y">%.0f</text>`,
			marginLeft-6, y+4, frac*maxV)
	}
}

func legend(b *strings.Builder, series []report.Series) {
	x := marginLeft + 8
	for si, s := range series {
		color := seriesPalette[si%len(seriesPalette)]
		fmt.Fprintf(b, `<rect x="%d" y="%d" width="10" height="10" fill="%s"/>`, x, marginTop-16, color)
		fmt.Fprintf(b, `<text x="%d" y="%d" class="legend">%s</text>`, x+14, marginTop-7, template.HTMLEscapeString(s.Name))
		x += 14 + 8*len(s.Name) + 20
	}
}

func axisLabels(b *strings.Builder, spec report.ChartSpec) {
	fmt.Fprintf(b, `<text x="%d" y="%d" class="axis-label">%s</text>`,
		chartWidth/2, chartHeight-10, template.HTMLEscapeString(spec.XLabel))
	fmt.Fprintf(b, `<text x="14" y="%d" class="axis-label" transform="rotate(-90 14 %d)">%s</text>`,
		chartHeight/2, chartHeight/2, template.HTMLEscapeString(spec.YLabel))
}
