// Package analysis computes every derived view of the dataset the
// report consumes: descriptive statistics, value counts, grouped
// counts, histogram bins and density curves. All projections are pure
// reads of the prepared table.
package analysis

import (
	"time"

	"heartscope/domain/core"
	"heartscope/domain/table"
	"heartscope/internal/errors"
	"heartscope/internal/recode"
)

// RequiredColumns are the clinical fields the narrative sections need
// by name. Extra columns flow into Describe and InfoTable unnamed.
var RequiredColumns = []string{"age", "sex", "cp", "trestbps", "chol", "fbs", "target"}

// Options shape the chart series of the prepared data.
type Options struct {
	PreviewRows int
	AgeBins     int
	KDEPoints   int
}

// DefaultOptions mirrors the report's fixed layout.
func DefaultOptions() Options {
	return Options{PreviewRows: 5, AgeBins: 20, KDEPoints: 200}
}

// DensityGroup is one group's density curve on a shared grid.
type DensityGroup struct {
	Name  string       `json:"name"`
	Curve DensityCurve `json:"curve"`
}

// PreparedData is everything the rendering layer consumes. It is built
// exactly once per run, immediately after load; no later stage mutates
// the table.
type PreparedData struct {
	RunID      core.RunID `json:"run_id"`
	SourcePath string     `json:"source_path"`
	LoadedAt   time.Time  `json:"loaded_at"`

	Table       table.Table `json:"-"`
	RowCount    int         `json:"row_count"`
	ColumnCount int         `json:"column_count"`
	Headers     []string    `json:"headers"`
	Head        [][]string  `json:"head"`
	Tail        [][]string  `json:"tail"`

	Info     []ColumnInfo  `json:"info"`
	Describe DescribeTable `json:"describe"`

	TargetCounts table.ValueCounts `json:"target_counts"`
	SexCounts    table.ValueCounts `json:"sex_counts"`
	CPCounts     table.ValueCounts `json:"cp_counts"`

	DiseaseBySex GroupedCounts `json:"disease_by_sex"`
	CPByTarget   GroupedCounts `json:"cp_by_target"`
	FBSByTarget  GroupedCounts `json:"fbs_by_target"`

	AgeHistogram HistogramData  `json:"age_histogram"`
	AgeDensity   DensityCurve   `json:"age_density"`
	BPBySex      []DensityGroup `json:"bp_by_sex"`

	// MalformedCodes counts category codes per column that had no
	// label mapping; surfaced as a data-quality note, never fatal.
	MalformedCodes map[string]int `json:"malformed_codes,omitempty"`
}

// Prepare runs the single preparation stage: validate the header set,
// recode the coded columns once, then compute every summary the
// report reads. The returned value is treated as immutable downstream.
func Prepare(raw table.Table, source string, opts Options) (*PreparedData, error) {
	for _, col := range RequiredColumns {
		if !raw.HasColumn(col) {
			return nil, errors.InvalidInput("dataset is missing required column: " + col)
		}
	}

	recoded := recode.Apply(raw)
	t := recoded.Table

	p := &PreparedData{
		RunID:          core.NewRunID(),
		SourcePath:     source,
		LoadedAt:       time.Now(),
		Table:          t,
		RowCount:       t.NumRows(),
		ColumnCount:    t.NumCols(),
		Headers:        t.Headers(),
		Head:           t.Head(opts.PreviewRows),
		Tail:           t.Tail(opts.PreviewRows),
		Info:           InfoTable(t),
		Describe:       Describe(t),
		MalformedCodes: recoded.MalformedCodes,
	}

	p.TargetCounts, _ = t.CountValues("target")
	p.SexCounts, _ = t.CountValues("sex")
	p.CPCounts, _ = t.CountValues("cp")

	p.DiseaseBySex, _ = GroupedValueCounts(t, "sex", "target")
	p.CPByTarget, _ = GroupedValueCounts(t, "cp", "target")
	p.FBSByTarget, _ = GroupedValueCounts(t, "fbs", "target")

	if ages, ok := t.FloatColumn("age"); ok && len(ages) > 0 {
		p.AgeHistogram = Histogram(ages, opts.AgeBins)
		p.AgeDensity = KDE(ages, opts.KDEPoints)
	}

	if groups, values, ok := GroupedFloats(t, "trestbps", "sex"); ok {
		grid := SharedGrid(values, opts.KDEPoints)
		for i, g := range groups {
			if len(values[i]) == 0 {
				continue
			}
			p.BPBySex = append(p.BPBySex, DensityGroup{
				Name:  g,
				Curve: KDEOnGrid(values[i], grid),
			})
		}
	}

	return p, nil
}
