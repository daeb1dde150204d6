package config

import (
	"os"
	"strconv"

	"heartscope/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Data   DataConfig
	Report ReportConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// DataConfig holds data source settings
type DataConfig struct {
	// FilePath points at the dataset file (.csv or .xlsx).
	FilePath string
}

// ReportConfig holds report shape settings
type ReportConfig struct {
	PreviewRows int // rows shown in the head/tail preview tables
	AgeBins     int // histogram bin count for the age distribution
	KDEPoints   int // evaluation points for density charts
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Data: DataConfig{
			FilePath: getEnvOrDefault("DATA_FILE", "input/heart.csv"),
		},
		Report: ReportConfig{
			PreviewRows: getEnvIntOrDefault("PREVIEW_ROWS", 5),
			AgeBins:     getEnvIntOrDefault("AGE_BINS", 20),
			KDEPoints:   getEnvIntOrDefault("KDE_POINTS", 200),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Data.FilePath == "" {
		return errors.ConfigInvalid("DATA_FILE must not be empty")
	}
	if config.Report.PreviewRows < 1 {
		return errors.ConfigInvalid("PREVIEW_ROWS must be at least 1")
	}
	if config.Report.AgeBins < 2 {
		return errors.ConfigInvalid("AGE_BINS must be at least 2")
	}
	if config.Report.KDEPoints < 10 {
		return errors.ConfigInvalid("KDE_POINTS must be at least 10")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
