package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heartscope/internal/analysis"
	"heartscope/internal/errors"
	"heartscope/internal/testkit"
)

func preparedFixture(t *testing.T) *analysis.PreparedData {
	t.Helper()
	gen := testkit.NewHeartDataGenerator(testkit.DefaultHeartConfig())
	p, err := analysis.Prepare(gen.GenerateTable(), "input/heart.csv", analysis.DefaultOptions())
	require.NoError(t, err)
	return p
}

func TestBuild_FixedSectionSequence(t *testing.T) {
	doc := NewBuilder().Build(preparedFixture(t))

	want := []string{
		"methodology", "introduction", "preview", "info", "statistics",
		"affected", "chest-pain", "fbs", "trestbps",
		"risk-factors", "prevention", "conclusion",
	}
	require.Len(t, doc.Sections, len(want))
	for i, id := range want {
		assert.Equal(t, id, doc.Sections[i].ID, "section %d out of order", i)
	}

	assert.Equal(t, DocumentTitle, doc.Title)
	assert.True(t, doc.HasData())
	assert.Equal(t, 303, doc.RowCount)
}

func TestBuild_IsDeterministicForSameInput(t *testing.T) {
	p := preparedFixture(t)
	a := NewBuilder().Build(p)
	b := NewBuilder().Build(p)

	require.Equal(t, len(a.Sections), len(b.Sections))
	for i := range a.Sections {
		assert.Equal(t, a.Sections[i].Charts, b.Sections[i].Charts,
			"charts of section %s differ between identical builds", a.Sections[i].ID)
		assert.Equal(t, a.Sections[i].Tables, b.Sections[i].Tables)
	}
}

func TestBuild_GenderChartCarriesBothLabels(t *testing.T) {
	// All-female input: the gender chart still shows both bars, the
	// absent label with a zero count.
	p, err := analysis.Prepare(testkit.FixedTable(0, 25), "fixed.csv", analysis.DefaultOptions())
	require.NoError(t, err)

	doc := NewBuilder().Build(p)

	var found bool
	for _, sec := range doc.Sections {
		for _, c := range sec.Charts {
			if c.ID == "gender-counts" {
				found = true
				require.Equal(t, []string{"Female", "Male"}, c.Categories)
				require.Len(t, c.Series, 1)
				assert.Equal(t, []float64{25, 0}, c.Series[0].Values)
			}
		}
	}
	require.True(t, found, "gender-counts chart missing")
}

func TestBuild_ChestPainDisplayNames(t *testing.T) {
	doc := NewBuilder().Build(preparedFixture(t))

	var categories []string
	for _, sec := range doc.Sections {
		if sec.ID != "chest-pain" {
			continue
		}
		for _, c := range sec.Charts {
			if c.ID == "cp-distribution" {
				categories = c.Categories
			}
		}
	}
	require.NotEmpty(t, categories, "cp-distribution chart missing")

	// Codes are shown with their clinical names, not raw digits.
	joined := strings.Join(categories, "|")
	assert.NotContains(t, joined, "0")
	assert.Contains(t, joined, "angina")
}

func TestBuildError_Document(t *testing.T) {
	loadErr := errors.DatasetNotFound("input/heart.csv")

	doc := NewBuilder().BuildError("input/heart.csv", loadErr)

	assert.False(t, doc.HasData())
	assert.Contains(t, doc.LoadError, "input/heart.csv")
	require.Len(t, doc.Sections, 2)
	assert.Equal(t, "methodology", doc.Sections[0].ID)
	assert.Equal(t, "introduction", doc.Sections[1].ID)
	for _, sec := range doc.Sections {
		assert.Empty(t, sec.Charts, "error document must carry no data sections")
		assert.Empty(t, sec.Tables)
	}
}

func TestBuild_MalformedCodeNotes(t *testing.T) {
	p := preparedFixture(t)
	p.MalformedCodes = map[string]int{"sex": 2}

	doc := NewBuilder().Build(p)

	var notes []string
	for _, sec := range doc.Sections {
		if sec.ID == "info" {
			notes = sec.Notes
		}
	}
	require.Len(t, notes, 1)
	assert.Contains(t, notes[0], "sex")
}
