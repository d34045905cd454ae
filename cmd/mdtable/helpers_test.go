package main

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"
)

// fixedNow is the clock used by test environments.
var fixedNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

// testEnv returns an Environment with captured output and vars as the
// process environment.
func testEnv(vars map[string]string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer

	environ := make([]string, 0, len(vars))
	for k, v := range vars {
		environ = append(environ, k+"="+v)
	}
	sort.Strings(environ)

	env := &Environment{
		Now:     func() time.Time { return fixedNow },
		Stdout:  &stdout,
		Stderr:  &stderr,
		Getenv:  func(k string) string { return vars[k] },
		Environ: func() []string { return environ },
	}
	return env, &stdout, &stderr
}

// sampleCSV holds one converted row, one plain row, and one malformed table
// (header and delimiter cell counts differ).
const sampleCSV = "ID,Body\n" +
	"1,\"Intro\n| a | b |\n|:--|--:|\n| 1 | 2 |\nOutro\"\n" +
	"2,plain text\n" +
	"3,\"| a |\n|---|---|\n| 1 |\"\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}
