package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alnah/go-mdtable/internal/config"
)

// ErrOpenLog indicates the configured log file could not be opened.
var ErrOpenLog = errors.New("failed to open log file")

const logFilePermissions = 0o644 // rw-r--r--

// nopCloser is returned when logging to a writer the CLI does not own.
type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newLogger builds the run logger. Records go to cfg.File (appended) when
// set, otherwise to stderr. verbose forces debug and quiet forces error,
// overriding cfg.Level.
func newLogger(cfg config.LogConfig, quiet, verbose bool, stderr io.Writer) (*slog.Logger, io.Closer, error) {
	level := slog.LevelInfo
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, nil, fmt.Errorf("%w: log.level: %v", config.ErrInvalidValue, err)
		}
	}
	switch {
	case verbose:
		level = slog.LevelDebug
	case quiet:
		level = slog.LevelError
	}

	var w io.Writer = stderr
	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFilePermissions) // #nosec G304 -- log path is user-provided
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrOpenLog, err)
		}
		w, closer = f, f
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler), closer, nil
}
