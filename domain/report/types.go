// Package report defines the rendering contract between the prepared
// data and any presentation backend: sections in a fixed order, each
// carrying narrative HTML, tables and precomputed chart series.
package report

import (
	"html/template"
	"time"

	"heartscope/domain/core"
)

// ChartKind enumerates the chart shapes the renderer understands.
type ChartKind string

const (
	ChartBar        ChartKind = "bar"
	ChartGroupedBar ChartKind = "grouped_bar"
	ChartHistogram  ChartKind = "histogram"
	ChartDensity    ChartKind = "density"
)

// Series is one named sequence of y-values aligned with a chart's
// categories (bar charts) or x-values (density charts).
type Series struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// ChartSpec is a complete, renderer-agnostic chart description.
// Identical inputs must produce identical specs.
type ChartSpec struct {
	ID         string    `json:"id"`
	Kind       ChartKind `json:"kind"`
	Title      string    `json:"title"`
	XLabel     string    `json:"x_label"`
	YLabel     string    `json:"y_label"`
	Categories []string  `json:"categories,omitempty"`
	XValues    []float64 `json:"x_values,omitempty"`
	Series     []Series  `json:"series"`
}

// TableView is a rendered tabular block (previews, describe output).
type TableView struct {
	Title   string     `json:"title"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Section is one block of the report document.
type Section struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Body     template.HTML `json:"-"`
	Tables   []TableView   `json:"tables,omitempty"`
	Charts   []ChartSpec   `json:"charts,omitempty"`
	Notes    []string      `json:"notes,omitempty"`
	KeyValue [][2]string   `json:"key_value,omitempty"`
}

// Document is the fully assembled report.
type Document struct {
	Title       string
	RunID       core.RunID
	GeneratedAt time.Time
	SourcePath  string
	RowCount    int
	ColumnCount int
	Sections    []Section

	// LoadError is set when the dataset could not be read; the
	// document then carries only the narrative sections plus an
	// error notice, and no data-dependent content.
	LoadError string
}

// HasData reports whether data-dependent sections were rendered.
func (d Document) HasData() bool {
	return d.LoadError == "" && d.RowCount > 0
}
