package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	defaults "github.com/cubeengine/plugingen/pkg/codegen/config"
)

// Config holds the tool configuration for one plugingen invocation
type Config struct {
	// Discovery inputs; at least one is required
	SourceDir        string
	DeclarationsFile string

	// Output roots
	SourceOut string
	ClassOut  string

	// Watch mode
	Watch      bool
	WatchDelay time.Duration

	DryRun   bool
	LogLevel logrus.Level

	// Generator options
	Options Options
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		SourceDir:        getEnv("PLUGINGEN_SOURCE_DIR", ""),
		DeclarationsFile: getEnv("PLUGINGEN_DECLARATIONS", ""),
		SourceOut:        getEnv("PLUGINGEN_SOURCE_OUT", defaults.DefaultSourceOut),
		ClassOut:         getEnv("PLUGINGEN_CLASS_OUT", defaults.DefaultClassOut),
		Watch:            getEnvBool("PLUGINGEN_WATCH", false),
		WatchDelay:       getEnvDuration("PLUGINGEN_WATCH_DELAY", defaults.DefaultWatchDelay),
		DryRun:           getEnvBool("PLUGINGEN_DRY_RUN", false),
		LogLevel:         parseLogLevel(getEnv("PLUGINGEN_LOG_LEVEL", "info")),
		Options:          LoadOptionsFromEnv(),
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.SourceDir == "" && c.DeclarationsFile == "" {
		return fmt.Errorf("a source directory or a declarations file is required")
	}
	if !c.DryRun {
		if c.SourceOut == "" {
			return fmt.Errorf("source output directory is required")
		}
		if c.ClassOut == "" {
			return fmt.Errorf("class output directory is required")
		}
	}
	if c.Watch {
		if c.SourceDir == "" {
			return fmt.Errorf("watch mode requires a source directory")
		}
		if c.WatchDelay < 0 {
			return fmt.Errorf("watch delay must not be negative")
		}
		if !c.DryRun && within(c.SourceOut, c.SourceDir) {
			return fmt.Errorf("watch mode requires the source output outside the source directory")
		}
	}
	return nil
}

// within reports whether path is dir or below it. Relative paths are
// resolved against the working directory first.
func within(path, dir string) bool {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absDir, absPath)
	if err != nil {
		return false
	}
	return rel == "." || filepath.IsLocal(rel)
}

// parseLogLevel parses a log level string, falling back to info
func parseLogLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}

// getEnv returns an environment variable value or a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool returns a boolean environment variable or a default
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return strings.ToLower(value) == "true" || value == "1"
	}
	return defaultValue
}

// getEnvDuration returns a duration environment variable or a default
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
