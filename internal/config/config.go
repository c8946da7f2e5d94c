package config

import (
	"os"
	"strconv"
	"time"

	"ifcsheet/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Upload   UploadConfig
	Analysis AnalysisConfig
	Chart    ChartConfig
	LogLevel string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// UploadConfig bounds what the upload store accepts and how long it keeps it
type UploadConfig struct {
	MaxBytes   int64
	TTL        time.Duration
	MaxEntries int
}

// AnalysisConfig holds spreadsheet analysis settings
type AnalysisConfig struct {
	PreviewRows  int
	StatsWorkers int
}

// ChartConfig holds rendered chart dimensions in pixels
type ChartConfig struct {
	Width  int
	Height int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8501"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Upload: UploadConfig{
			MaxBytes:   int64(getEnvIntOrDefault("MAX_UPLOAD_MB", 200)) << 20,
			TTL:        getEnvDurationOrDefault("UPLOAD_TTL", 15*time.Minute),
			MaxEntries: getEnvIntOrDefault("UPLOAD_MAX_ENTRIES", 64),
		},
		Analysis: AnalysisConfig{
			PreviewRows:  getEnvIntOrDefault("PREVIEW_ROWS", 50),
			StatsWorkers: getEnvIntOrDefault("STATS_WORKERS", 4),
		},
		Chart: ChartConfig{
			Width:  getEnvIntOrDefault("CHART_WIDTH", 960),
			Height: getEnvIntOrDefault("CHART_HEIGHT", 480),
		},
		LogLevel: getEnvOrDefault("LOG_LEVEL", "INFO"),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

// Default returns the configuration used when no environment is set
func Default() *Config {
	return &Config{
		Server:   ServerConfig{Port: "8501", GinMode: "release"},
		Upload:   UploadConfig{MaxBytes: 200 << 20, TTL: 15 * time.Minute, MaxEntries: 64},
		Analysis: AnalysisConfig{PreviewRows: 50, StatsWorkers: 4},
		Chart:    ChartConfig{Width: 960, Height: 480},
		LogLevel: "INFO",
	}
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("PORT is required")
	}
	if _, err := strconv.Atoi(config.Server.Port); err != nil {
		return errors.ConfigInvalid("PORT must be numeric")
	}
	if config.Upload.MaxBytes <= 0 {
		return errors.ConfigInvalid("MAX_UPLOAD_MB must be positive")
	}
	if config.Upload.TTL <= 0 {
		return errors.ConfigInvalid("UPLOAD_TTL must be positive")
	}
	if config.Upload.MaxEntries <= 0 {
		return errors.ConfigInvalid("UPLOAD_MAX_ENTRIES must be positive")
	}
	if config.Analysis.PreviewRows <= 0 {
		return errors.ConfigInvalid("PREVIEW_ROWS must be positive")
	}
	if config.Analysis.StatsWorkers <= 0 {
		return errors.ConfigInvalid("STATS_WORKERS must be positive")
	}
	if config.Chart.Width < 200 || config.Chart.Height < 150 {
		return errors.ConfigInvalid("chart must be at least 200x150")
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

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
