package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heartscope/domain/table"
	"heartscope/internal/errors"
	"heartscope/internal/testkit"
)

func TestPrepare_FullPipeline(t *testing.T) {
	gen := testkit.NewHeartDataGenerator(testkit.DefaultHeartConfig())
	tbl := gen.GenerateTable()

	p, err := Prepare(tbl, "input/heart.csv", DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 303, p.RowCount)
	assert.Equal(t, 7, p.ColumnCount)
	assert.Equal(t, "input/heart.csv", p.SourcePath)
	assert.NotEmpty(t, p.RunID)

	assert.Len(t, p.Head, 5)
	assert.Len(t, p.Tail, 5)

	// Recoding happened before any summary: counts carry labels.
	assert.Equal(t, 303, p.TargetCounts.Total())
	assert.Zero(t, p.TargetCounts.Get("0"))
	assert.Zero(t, p.TargetCounts.Get("1"))
	assert.Equal(t, 303, p.TargetCounts.Get("Disease")+p.TargetCounts.Get("No Disease"))
	assert.Equal(t, 303, p.SexCounts.Get("Male")+p.SexCounts.Get("Female"))

	// Age distribution uses the configured shapes.
	assert.Len(t, p.AgeHistogram.Counts, 20)
	assert.Len(t, p.AgeDensity.X, 200)

	// Grouped tables are keyed by the recoded labels.
	assert.Equal(t, "sex", p.DiseaseBySex.X)
	assert.Equal(t, "target", p.DiseaseBySex.Hue)
	for _, s := range p.DiseaseBySex.Series {
		assert.Contains(t, []string{"Disease", "No Disease"}, s.Name)
	}

	assert.NotEmpty(t, p.BPBySex)
	assert.Empty(t, p.MalformedCodes)
}

func TestPrepare_ExactGroupCounts(t *testing.T) {
	p, err := Prepare(testkit.FixedTable(165, 138), "fixed.csv", DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 165, p.TargetCounts.Get("Disease"))
	assert.Equal(t, 138, p.TargetCounts.Get("No Disease"))

	// Construction ties sex to target, so the two-way table is exact.
	found := false
	for _, s := range p.DiseaseBySex.Series {
		if s.Name == "Disease" {
			found = true
			for j, cat := range p.DiseaseBySex.Categories {
				if cat == "Male" {
					assert.Equal(t, 165, s.Counts[j])
				}
				if cat == "Female" {
					assert.Zero(t, s.Counts[j])
				}
			}
		}
	}
	assert.True(t, found, "Disease series missing from disease-by-sex table")
}

func TestPrepare_MissingRequiredColumn(t *testing.T) {
	tbl := table.New(
		[]string{"age", "sex"},
		[][]string{{"50", "1"}},
	)

	_, err := Prepare(tbl, "bad.csv", DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeInvalidInput))
	assert.Contains(t, err.Error(), "cp")
}

func TestPrepare_DoesNotModifyInput(t *testing.T) {
	tbl := testkit.FixedTable(3, 4)

	_, err := Prepare(tbl, "fixed.csv", DefaultOptions())
	require.NoError(t, err)

	sex, _ := tbl.Column("sex")
	assert.Equal(t, "1", sex[0], "input table must stay untouched")
}

func TestPrepare_SurfacesMalformedCodes(t *testing.T) {
	rows := [][]string{
		{"50", "1", "0", "130", "240", "0", "1"},
		{"61", "9", "1", "145", "280", "0", "0"}, // sex code 9 has no label
	}
	tbl := table.New([]string{"age", "sex", "cp", "trestbps", "chol", "fbs", "target"}, rows)

	p, err := Prepare(tbl, "dirty.csv", DefaultOptions())
	require.NoError(t, err, "malformed codes must not be fatal")
	assert.Equal(t, 1, p.MalformedCodes["sex"])
	assert.Equal(t, 1, p.SexCounts.Total(), "unmapped code drops out of the counts")
}
