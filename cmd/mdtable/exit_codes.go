package main

import (
	"context"
	"errors"
	"os"

	"github.com/alnah/go-mdtable/internal/config"
	"github.com/alnah/go-mdtable/internal/dataset"
	"github.com/alnah/go-mdtable/internal/dateutil"
	"github.com/alnah/go-mdtable/internal/fileutil"
)

// Exit codes for the mdtable CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, 128+SIGINT for interrupts.
const (
	ExitSuccess     = 0   // Successful conversion
	ExitGeneral     = 1   // General/unexpected error
	ExitUsage       = 2   // Invalid flags, arguments, or config
	ExitIO          = 3   // Input unreadable or output unwritable
	ExitInterrupted = 130 // Canceled by SIGINT/SIGTERM
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is/As on wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Interrupts (exit 130)
	if errors.Is(err, ErrInterrupted) ||
		errors.Is(err, context.Canceled) {
		return ExitInterrupted
	}

	// I/O errors (exit 3)
	var srcErr *dataset.SourceError
	var sinkErr *dataset.SinkError
	if errors.As(err, &srcErr) ||
		errors.As(err, &sinkErr) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrOpenLog) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, dataset.ErrUnsupportedFormat) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, fileutil.ErrSuffixEmpty) ||
		errors.Is(err, fileutil.ErrSuffixPathTraversal) {
		return ExitUsage
	}

	return ExitGeneral
}
