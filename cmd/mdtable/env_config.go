package main

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/alnah/go-mdtable/internal/config"
)

const envPrefix = "MDTABLE_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MDTABLE_CONFIG: config file name or path
	Column     string // MDTABLE_COLUMN: input column
	Sheet      string // MDTABLE_SHEET: input worksheet
	Workers    int    // MDTABLE_WORKERS: parallel workers
	LogFile    string // MDTABLE_LOG_FILE: log destination
	LogLevel   string // MDTABLE_LOG_LEVEL: debug, info, warn, error
}

// knownEnvVars lists valid MDTABLE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MDTABLE_CONFIG":    true,
	"MDTABLE_COLUMN":    true,
	"MDTABLE_SHEET":     true,
	"MDTABLE_WORKERS":   true,
	"MDTABLE_LOG_FILE":  true,
	"MDTABLE_LOG_LEVEL": true,
}

// loadEnvConfig reads configuration from environment variables.
// Malformed or non-positive MDTABLE_WORKERS values are ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("MDTABLE_CONFIG"),
		Column:     getenv("MDTABLE_COLUMN"),
		Sheet:      getenv("MDTABLE_SHEET"),
		LogFile:    getenv("MDTABLE_LOG_FILE"),
		LogLevel:   getenv("MDTABLE_LOG_LEVEL"),
	}

	if workers := getenv("MDTABLE_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// unknownEnvVars returns the names of set MDTABLE_* variables that are not
// recognized, in environment order.
func unknownEnvVars(environ []string) []string {
	var unknown []string
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// warnUnknownEnvVars logs a warning per unrecognized MDTABLE_* variable.
// Helps catch typos like MDTABLE_COLUMNS instead of MDTABLE_COLUMN.
func warnUnknownEnvVars(logger *slog.Logger, environ []string) {
	for _, name := range unknownEnvVars(environ) {
		logger.Warn("unknown environment variable (typo?)", "name", name)
	}
}

// applyEnvConfig applies environment variable values over config file values.
// Only non-empty variables take effect. CLI flags are applied afterwards
// by mergeFlags, giving: CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Column != "" {
		cfg.Input.Column = env.Column
	}
	if env.Sheet != "" {
		cfg.Input.Sheet = env.Sheet
	}
	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
	if env.LogFile != "" {
		cfg.Log.File = env.LogFile
	}
	if env.LogLevel != "" {
		cfg.Log.Level = env.LogLevel
	}
}
