// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/allisson/go-env"
	validation "github.com/jellydator/validation"
	"github.com/joho/godotenv"

	appValidation "github.com/allisson/documents/internal/validation"
)

// metricsNamespaceRegex matches a valid Prometheus metric name prefix.
var metricsNamespaceRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Config holds all application configuration.
type Config struct {
	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// MetricsEnabled indicates whether operation metrics are collected and
	// written to stderr after each command.
	MetricsEnabled bool
	// MetricsNamespace is the prefix of the metric names.
	MetricsNamespace string

	// ValidateBatchConcurrency is the maximum number of values validated in parallel.
	ValidateBatchConcurrency int
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", false),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "documents"),

		// Batch validation
		ValidateBatchConcurrency: env.GetInt("VALIDATE_BATCH_CONCURRENCY", 8),
	}
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.LogLevel,
			validation.Required,
			validation.In("debug", "info", "warn", "error"),
		),
		validation.Field(&c.MetricsNamespace,
			validation.Required,
			validation.Match(metricsNamespaceRegex),
		),
		validation.Field(&c.ValidateBatchConcurrency,
			validation.Required,
			validation.Min(1),
		),
	)
	return appValidation.WrapValidationError(err)
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
