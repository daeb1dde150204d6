package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load with defaults failed: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Port = %s, want 8080", cfg.Server.Port)
	}
	if cfg.Data.FilePath != "input/heart.csv" {
		t.Errorf("FilePath = %s, want input/heart.csv", cfg.Data.FilePath)
	}
	if cfg.Report.PreviewRows != 5 || cfg.Report.AgeBins != 20 || cfg.Report.KDEPoints != 200 {
		t.Errorf("Report defaults wrong: %+v", cfg.Report)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATA_FILE", "data/other.xlsx")
	t.Setenv("AGE_BINS", "30")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != "9000" {
		t.Errorf("Port = %s, want 9000", cfg.Server.Port)
	}
	if cfg.Data.FilePath != "data/other.xlsx" {
		t.Errorf("FilePath = %s, want data/other.xlsx", cfg.Data.FilePath)
	}
	if cfg.Report.AgeBins != 30 {
		t.Errorf("AgeBins = %d, want 30", cfg.Report.AgeBins)
	}
}

func TestLoad_RejectsInvalidShape(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"too few age bins", "AGE_BINS", "1"},
		{"too few kde points", "KDE_POINTS", "5"},
		{"zero preview rows", "PREVIEW_ROWS", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("Expected validation error for %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestGetEnvIntOrDefault_IgnoresGarbage(t *testing.T) {
	t.Setenv("SOME_INT", "not-a-number")
	if got := getEnvIntOrDefault("SOME_INT", 7); got != 7 {
		t.Errorf("Expected fallback 7, got %d", got)
	}
}
