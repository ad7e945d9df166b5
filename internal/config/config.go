// Package config loads batch-driver configuration from defaults, an optional
// config file, and CONTOUR_-prefixed environment variables, in ascending
// precedence. Command-line flags are bound on top by the CLI itself.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the batch driver settings.
type Config struct {
	// InputDir is the directory scanned for span and HTML files
	InputDir string

	// OutputDir is where per-document result JSON files are written
	OutputDir string

	// Workers is the number of documents processed concurrently
	Workers int

	// Language, when set, skips identification for every document
	Language string

	// Calibrate enables per-document font-level calibration
	Calibrate bool

	// Verbose enables per-document font-size survey logging
	Verbose bool
}

// Load builds the configuration. A config file is optional: pass an empty
// path to use defaults and environment only.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("input", "input")
	v.SetDefault("output", "output")
	v.SetDefault("workers", 1)
	v.SetDefault("language", "")
	v.SetDefault("calibrate", false)
	v.SetDefault("verbose", false)

	v.SetEnvPrefix("CONTOUR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &Config{
		InputDir:  v.GetString("input"),
		OutputDir: v.GetString("output"),
		Workers:   v.GetInt("workers"),
		Language:  v.GetString("language"),
		Calibrate: v.GetBool("calibrate"),
		Verbose:   v.GetBool("verbose"),
	}

	if cfg.Workers < 1 {
		return nil, fmt.Errorf("workers must be at least 1, got %d", cfg.Workers)
	}

	return cfg, nil
}
