package analysis

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// HistogramData holds fixed-width bin counts. Edges has len(Counts)+1
// entries; bin i covers [Edges[i], Edges[i+1]), the last bin is closed.
type HistogramData struct {
	Edges  []float64 `json:"edges"`
	Counts []int     `json:"counts"`
}

// Histogram bins values into the given number of equal-width bins.
func Histogram(values []float64, bins int) HistogramData {
	if len(values) == 0 || bins < 1 {
		return HistogramData{}
	}

	minV, _ := stats.Min(values)
	maxV, _ := stats.Max(values)
	if minV == maxV {
		// Degenerate range: a single bin holds everything.
		return HistogramData{
			Edges:  []float64{minV, maxV + 1},
			Counts: []int{len(values)},
		}
	}

	width := (maxV - minV) / float64(bins)
	edges := make([]float64, bins+1)
	for i := range edges {
		edges[i] = minV + float64(i)*width
	}
	edges[bins] = maxV

	counts := make([]int, bins)
	for _, v := range values {
		idx := int((v - minV) / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}
	return HistogramData{Edges: edges, Counts: counts}
}

// DensityCurve is a kernel density estimate evaluated on a fixed grid.
type DensityCurve struct {
	X       []float64 `json:"x"`
	Density []float64 `json:"density"`
}

// KDE computes a Gaussian kernel density estimate over an evenly
// spaced grid spanning the data range padded by one bandwidth on each
// side. Bandwidth follows Silverman's rule of thumb.
func KDE(values []float64, points int) DensityCurve {
	return KDEOnGrid(values, kdeGrid(values, points))
}

// KDEOnGrid evaluates the Gaussian KDE of values on a caller-supplied
// grid, so several groups can share one x-axis.
func KDEOnGrid(values []float64, grid []float64) DensityCurve {
	if len(values) == 0 || len(grid) == 0 {
		return DensityCurve{}
	}

	h := silvermanBandwidth(values)
	kernel := distuv.Normal{Mu: 0, Sigma: 1}
	n := float64(len(values))

	density := make([]float64, len(grid))
	for i, x := range grid {
		sum := 0.0
		for _, v := range values {
			sum += kernel.Prob((x - v) / h)
		}
		density[i] = sum / (n * h)
	}
	return DensityCurve{X: grid, Density: density}
}

// kdeGrid builds an evenly spaced evaluation grid over the padded data range.
func kdeGrid(values []float64, points int) []float64 {
	if len(values) == 0 || points < 2 {
		return nil
	}
	minV, _ := stats.Min(values)
	maxV, _ := stats.Max(values)
	h := silvermanBandwidth(values)

	lo := minV - h
	hi := maxV + h
	step := (hi - lo) / float64(points-1)

	grid := make([]float64, points)
	for i := range grid {
		grid[i] = lo + float64(i)*step
	}
	return grid
}

// SharedGrid builds one evaluation grid covering every group's range,
// padded by the largest group bandwidth.
func SharedGrid(groups [][]float64, points int) []float64 {
	var all []float64
	maxH := 0.0
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}
		all = append(all, g...)
		if h := silvermanBandwidth(g); h > maxH {
			maxH = h
		}
	}
	if len(all) == 0 || points < 2 {
		return nil
	}
	minV, _ := stats.Min(all)
	maxV, _ := stats.Max(all)
	lo := minV - maxH
	hi := maxV + maxH
	step := (hi - lo) / float64(points-1)

	grid := make([]float64, points)
	for i := range grid {
		grid[i] = lo + float64(i)*step
	}
	return grid
}

// silvermanBandwidth returns 1.06 * sigma * n^(-1/5), with a floor so a
// constant sample still produces a finite curve.
func silvermanBandwidth(values []float64) float64 {
	stdDev, _ := stats.StandardDeviationSample(values)
	n := float64(len(values))
	h := 1.06 * stdDev * math.Pow(n, -1.0/5.0)
	if h <= 0 || math.IsNaN(h) {
		return 1.0
	}
	return h
}
