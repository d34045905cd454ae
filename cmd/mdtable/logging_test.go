package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-mdtable/internal/config"
)

func TestNewLogger_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		level     string
		quiet     bool
		verbose   bool
		wantDebug bool
		wantInfo  bool
		wantWarn  bool
	}{
		{name: "default info", wantInfo: true, wantWarn: true},
		{name: "config debug", level: "debug", wantDebug: true, wantInfo: true, wantWarn: true},
		{name: "config warn", level: "WARN", wantWarn: true},
		{name: "verbose overrides", level: "error", verbose: true, wantDebug: true, wantInfo: true, wantWarn: true},
		{name: "quiet overrides", level: "debug", quiet: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger, closer, err := newLogger(config.LogConfig{Level: tt.level}, tt.quiet, tt.verbose, &buf)
			if err != nil {
				t.Fatalf("newLogger() error: %v", err)
			}
			defer closer.Close()

			logger.Debug("d-msg")
			logger.Info("i-msg")
			logger.Warn("w-msg")
			logger.Error("e-msg")

			out := buf.String()
			check := func(msg string, want bool) {
				if got := strings.Contains(out, msg); got != want {
					t.Errorf("%s logged = %v, want %v\n%s", msg, got, want, out)
				}
			}
			check("d-msg", tt.wantDebug)
			check("i-msg", tt.wantInfo)
			check("w-msg", tt.wantWarn)
			check("e-msg", true)
		})
	}
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	t.Parallel()

	_, _, err := newLogger(config.LogConfig{Level: "loud"}, false, false, &bytes.Buffer{})
	if !errors.Is(err, config.ErrInvalidValue) {
		t.Errorf("error = %v, want ErrInvalidValue", err)
	}
}

func TestNewLogger_FileAppends(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "converter.log")
	var stderr bytes.Buffer

	for _, msg := range []string{"first", "second"} {
		logger, closer, err := newLogger(config.LogConfig{File: path}, false, false, &stderr)
		if err != nil {
			t.Fatalf("newLogger() error: %v", err)
		}
		logger.Info(msg)
		if err := closer.Close(); err != nil {
			t.Fatalf("Close() error: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "msg=first") || !strings.Contains(string(data), "msg=second") {
		t.Errorf("log file = %q, want both runs", data)
	}
	if stderr.Len() != 0 {
		t.Errorf("stderr = %q, want empty with a log file", stderr.String())
	}
}

func TestNewLogger_FileError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "x.log")
	_, _, err := newLogger(config.LogConfig{File: path}, false, false, &bytes.Buffer{})
	if !errors.Is(err, ErrOpenLog) {
		t.Errorf("error = %v, want ErrOpenLog", err)
	}
}
