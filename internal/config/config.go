// Package config loads batch conversion settings from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alnah/go-mdtable/internal/fileutil"
	"github.com/alnah/go-mdtable/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// AppDirName is the directory under the user config dir searched for configs.
const AppDirName = "go-mdtable"

// Field length limits.
const (
	MaxColumnLength = 255  // Header cell text
	MaxSheetLength  = 31   // Excel worksheet name limit
	MaxSuffixLength = 64   // Output file name suffix
	MaxPathLength   = 4096 // PATH_MAX on Linux
)

// MaxWorkers bounds the workers setting.
const MaxWorkers = 64

// LogLevels lists accepted log.level values.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Config holds all configuration for a batch conversion.
type Config struct {
	Input   InputConfig  `yaml:"input"`
	Output  OutputConfig `yaml:"output"`
	Workers int          `yaml:"workers"` // 0 = automatic
	Log     LogConfig    `yaml:"log"`
}

// InputConfig selects what to convert.
type InputConfig struct {
	Column string `yaml:"column"` // Header name (empty = first column)
	Sheet  string `yaml:"sheet"`  // Workbook sheet (empty = first sheet)
}

// OutputConfig controls how results are written.
type OutputConfig struct {
	Suffix string `yaml:"suffix"` // Appended to the input base name when no output path is given; may hold {date} placeholders
	Sheet  string `yaml:"sheet"`  // Sheet name of written workbooks (empty = Sheet1)
}

// LogConfig controls diagnostics.
type LogConfig struct {
	File  string `yaml:"file"`  // Appended to; empty = stderr
	Level string `yaml:"level"` // debug, info, warn, error
}

// Validate checks field lengths and value ranges.
// Called automatically by LoadConfig, but available for callers
// who construct or merge a Config themselves.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.column", c.Input.Column, MaxColumnLength); err != nil {
		return err
	}
	if err := validateFieldLength("input.sheet", c.Input.Sheet, MaxSheetLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.sheet", c.Output.Sheet, MaxSheetLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.suffix", c.Output.Suffix, MaxSuffixLength); err != nil {
		return err
	}
	if c.Output.Suffix != "" {
		if err := fileutil.ValidateSuffix(c.Output.Suffix); err != nil {
			return fmt.Errorf("%w: output.suffix: %v", ErrInvalidValue, err)
		}
	}
	if err := validateFieldLength("log.file", c.Log.File, MaxPathLength); err != nil {
		return err
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers: must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Workers)
	}

	if c.Log.Level != "" && !slices.Contains(LogLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("%w: log.level: %q (must be one of %s)",
			ErrInvalidValue, c.Log.Level, strings.Join(LogLevels, ", "))
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in SearchPaths order.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrConfigParse, configPath, yamlutil.FormatError(err))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the candidate files for a config name, in lookup order:
// the current directory, then the user config directory, .yaml before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDirName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths(name).
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
