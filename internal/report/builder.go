// Package report assembles the fixed section sequence of the heart
// disease analysis document from prepared data. The builder is pure:
// identical prepared data yields an identical document.
package report

import (
	"fmt"
	"time"

	"heartscope/domain/report"
	"heartscope/internal/analysis"
)

// DocumentTitle is the served report's title.
const DocumentTitle = "Heart Disease Insights & Prevention Report"

// chestPainNames maps the cp codes (kept numeric in the table) to the
// axis labels used on chest pain charts.
var chestPainNames = map[string]string{
	"0": "Typical angina",
	"1": "Atypical angina",
	"2": "Non-anginal pain",
	"3": "Asymptomatic",
}

// Builder turns PreparedData into a report document.
type Builder struct{}

// NewBuilder creates a report builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// BuildError assembles the document shown when the dataset could not
// be loaded: the narrative frame plus an error notice, no data
// sections.
func (b *Builder) BuildError(source string, loadErr error) report.Document {
	return report.Document{
		Title:       DocumentTitle,
		GeneratedAt: time.Now(),
		SourcePath:  source,
		LoadError:   loadErr.Error(),
		Sections: []report.Section{
			b.methodology(),
			b.introduction(),
		},
	}
}

// Build assembles the full document in its fixed section order.
func (b *Builder) Build(p *analysis.PreparedData) report.Document {
	doc := report.Document{
		Title:       DocumentTitle,
		RunID:       p.RunID,
		GeneratedAt: p.LoadedAt,
		SourcePath:  p.SourcePath,
		RowCount:    p.RowCount,
		ColumnCount: p.ColumnCount,
	}

	doc.Sections = []report.Section{
		b.methodology(),
		b.introduction(),
		b.preview(p),
		b.datasetInfo(p),
		b.overallStatistics(p),
		b.whoIsMostAffected(p),
		b.chestPain(p),
		b.fastingBloodSugar(p),
		b.restingBloodPressure(p),
		b.riskFactors(),
		b.prevention(),
		b.conclusion(),
	}
	return doc
}

func (b *Builder) methodology() report.Section {
	return report.Section{
		ID:    "methodology",
		Title: "Methodology",
		Body:  renderMarkdown(methodologyMD),
	}
}

func (b *Builder) introduction() report.Section {
	return report.Section{
		ID:    "introduction",
		Title: "Introduction: Why This Matters",
		Body:  renderMarkdown(introductionMD),
	}
}

func (b *Builder) preview(p *analysis.PreparedData) report.Section {
	return report.Section{
		ID:    "preview",
		Title: "Dataset Preview",
		KeyValue: [][2]string{
			{"Rows", fmt.Sprintf("%d", p.RowCount)},
			{"Columns", fmt.Sprintf("%d", p.ColumnCount)},
		},
		Tables: []report.TableView{
			{Title: "Top rows", Columns: p.Headers, Rows: p.Head},
			{Title: "Bottom rows", Columns: p.Headers, Rows: p.Tail},
		},
	}
}

func (b *Builder) datasetInfo(p *analysis.PreparedData) report.Section {
	rows := make([][]string, len(p.Info))
	for i, ci := range p.Info {
		rows[i] = []string{ci.Name, ci.DataType, fmt.Sprintf("%d", ci.NonNull), fmt.Sprintf("%d", ci.Unique)}
	}
	sec := report.Section{
		ID:    "info",
		Title: "Dataset Info",
		Tables: []report.TableView{
			{Title: "Columns", Columns: []string{"column", "type", "non-null", "unique"}, Rows: rows},
		},
	}
	for col, n := range p.MalformedCodes {
		sec.Notes = append(sec.Notes,
			fmt.Sprintf("%d value(s) in %q fell outside the expected code domain and render as missing", n, col))
	}
	return sec
}

func (b *Builder) overallStatistics(p *analysis.PreparedData) report.Section {
	d := p.Describe
	columns := append([]string{"statistic"}, d.Columns...)
	rows := make([][]string, len(d.Statistics))
	for i, stat := range d.Statistics {
		rows[i] = append([]string{stat}, d.Cells[i]...)
	}
	return report.Section{
		ID:    "statistics",
		Title: "Overall Statistics About the Dataset",
		Tables: []report.TableView{
			{Title: "Descriptive statistics", Columns: columns, Rows: rows},
		},
	}
}

func (b *Builder) whoIsMostAffected(p *analysis.PreparedData) report.Section {
	sec := report.Section{
		ID:    "affected",
		Title: "Who Is Most Affected?",
		Body:  renderMarkdown(affectedMD),
	}

	sec.KeyValue = [][2]string{
		{"People with heart disease", fmt.Sprintf("%d", p.TargetCounts.Get("Disease"))},
		{"People without heart disease", fmt.Sprintf("%d", p.TargetCounts.Get("No Disease"))},
		{"Female", fmt.Sprintf("%d", p.SexCounts.Get("Female"))},
		{"Male", fmt.Sprintf("%d", p.SexCounts.Get("Male"))},
	}

	sec.Charts = append(sec.Charts,
		barChart("target-counts", "People with heart disease vs without", "Condition", "Number of People", p.TargetCounts, nil),
		barChart("gender-counts", "Gender Distribution", "Gender", "Count", withFixedOrder(p.SexCounts, "Female", "Male"), nil),
		groupedBarChart("disease-by-gender", "Heart Disease Count by Gender", "Gender", "Count", p.DiseaseBySex, nil),
		histogramChart("age-distribution", "Distribution of Age", "Age", "Frequency", p.AgeHistogram, p.AgeDensity),
	)
	return sec
}

func (b *Builder) chestPain(p *analysis.PreparedData) report.Section {
	sec := report.Section{
		ID:    "chest-pain",
		Title: "Chest Pain Types: A Silent Warning",
		Body:  renderMarkdown(chestPainMD),
	}
	sec.Charts = append(sec.Charts,
		barChart("cp-distribution", "Chest Pain Type Distribution", "Chest Pain Type", "Number of People", p.CPCounts, chestPainNames),
		groupedBarChart("cp-by-disease", "Chest Pain Type Distribution by Heart Disease", "Chest Pain Type", "Number of Patients", p.CPByTarget, chestPainNames),
	)
	return sec
}

func (b *Builder) fastingBloodSugar(p *analysis.PreparedData) report.Section {
	sec := report.Section{
		ID:    "fbs",
		Title: "Fasting Blood Sugar (FBS)",
		Body:  renderMarkdown(fbsMD),
	}
	sec.Charts = append(sec.Charts,
		groupedBarChart("fbs-by-disease", "Heart Disease Count by Fasting Blood Sugar", "Fasting Blood Sugar Level", "Patients Count", p.FBSByTarget, nil),
	)
	return sec
}

func (b *Builder) restingBloodPressure(p *analysis.PreparedData) report.Section {
	sec := report.Section{
		ID:    "trestbps",
		Title: "Resting Blood Pressure",
		Body:  renderMarkdown(bloodPressureMD),
	}
	if chart, ok := densityChart("bp-by-gender", "Resting Blood Pressure by Gender", "Resting Blood Pressure (mm Hg)", "Density", p.BPBySex); ok {
		sec.Charts = append(sec.Charts, chart)
	}
	return sec
}

func (b *Builder) riskFactors() report.Section {
	return report.Section{
		ID:    "risk-factors",
		Title: "Top Risk Factors (Based on Visual Trends)",
		Tables: []report.TableView{
			{Title: "Risk associations", Columns: []string{"Factor", "Risk Association"}, Rows: riskFactorRows},
		},
	}
}

func (b *Builder) prevention() report.Section {
	return report.Section{
		ID:    "prevention",
		Title: "Prevention Recommendations",
		Body:  renderMarkdown(preventionMD),
	}
}

func (b *Builder) conclusion() report.Section {
	return report.Section{
		ID:    "conclusion",
		Title: "Final Thoughts & Conclusion",
		Body:  renderMarkdown(conclusionMD),
	}
}
