// Package testkit provides fixtures and synthetic data for tests: a
// seeded heart-record generator plus helpers that materialize tables
// and CSV files.
package testkit

import (
	"encoding/csv"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"

	"heartscope/domain/table"
)

// HeartGeneratorConfig configures the synthetic patient generator.
type HeartGeneratorConfig struct {
	RowCount    int     `json:"row_count"`
	DiseaseRate float64 `json:"disease_rate"`
	MaleRate    float64 `json:"male_rate"`
	HighFBSRate float64 `json:"high_fbs_rate"`
	Seed        int64   `json:"seed"`
}

// DefaultHeartConfig mirrors the reference dataset's rough shape:
// 303 rows, disease slightly more common than not.
func DefaultHeartConfig() HeartGeneratorConfig {
	return HeartGeneratorConfig{
		RowCount:    303,
		DiseaseRate: 0.54,
		MaleRate:    0.68,
		HighFBSRate: 0.15,
		Seed:        42,
	}
}

// HeartDataGenerator generates synthetic patient records with the
// report's required column set.
type HeartDataGenerator struct {
	config HeartGeneratorConfig
	rng    *rand.Rand
}

// NewHeartDataGenerator creates a new generator from a config.
func NewHeartDataGenerator(config HeartGeneratorConfig) *HeartDataGenerator {
	return &HeartDataGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Headers returns the generated column set, report columns first.
func (g *HeartDataGenerator) Headers() []string {
	return []string{"age", "sex", "cp", "trestbps", "chol", "fbs", "target"}
}

// GenerateRows produces RowCount synthetic patient rows. Disease cases
// skew older and toward higher resting blood pressure so grouped
// charts have visible structure.
func (g *HeartDataGenerator) GenerateRows() [][]string {
	rows := make([][]string, g.config.RowCount)
	for i := range rows {
		target := 0
		if g.rng.Float64() < g.config.DiseaseRate {
			target = 1
		}

		age := 52 + g.rng.NormFloat64()*9
		trestbps := 128 + g.rng.NormFloat64()*15
		if target == 1 {
			age += 4
			trestbps += 6
		}
		age = clamp(age, 29, 77)
		trestbps = clamp(trestbps, 94, 200)

		sex := 0
		if g.rng.Float64() < g.config.MaleRate {
			sex = 1
		}
		fbs := 0
		if g.rng.Float64() < g.config.HighFBSRate {
			fbs = 1
		}

		chol := clamp(245+g.rng.NormFloat64()*50, 126, 564)
		cp := g.rng.Intn(4)

		rows[i] = []string{
			fmt.Sprintf("%.0f", age),
			fmt.Sprintf("%d", sex),
			fmt.Sprintf("%d", cp),
			fmt.Sprintf("%.0f", trestbps),
			fmt.Sprintf("%.0f", chol),
			fmt.Sprintf("%d", fbs),
			fmt.Sprintf("%d", target),
		}
	}
	return rows
}

// GenerateTable materializes the synthetic rows as a Table.
func (g *HeartDataGenerator) GenerateTable() table.Table {
	return table.New(g.Headers(), g.GenerateRows())
}

// WriteCSV writes the synthetic dataset to dir/name and returns the
// full path. Intended for loader and end-to-end tests.
func (g *HeartDataGenerator) WriteCSV(dir, name string) (string, error) {
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(g.Headers()); err != nil {
		return "", err
	}
	if err := w.WriteAll(g.GenerateRows()); err != nil {
		return "", err
	}
	w.Flush()
	return path, w.Error()
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// FixedTable builds a small deterministic table for exact-count
// assertions: counts of every coded column are known by construction.
func FixedTable(targetOnes, targetZeros int) table.Table {
	rows := make([][]string, 0, targetOnes+targetZeros)
	for i := 0; i < targetOnes; i++ {
		rows = append(rows, []string{"60", "1", "2", "140", "250", "0", "1"})
	}
	for i := 0; i < targetZeros; i++ {
		rows = append(rows, []string{"45", "0", "0", "120", "200", "0", "0"})
	}
	return table.New([]string{"age", "sex", "cp", "trestbps", "chol", "fbs", "target"}, rows)
}
