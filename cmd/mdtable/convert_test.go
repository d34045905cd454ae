package main

// Notes:
// - End-to-end runs go through runMain with CSV and TSV files in t.TempDir();
//   workbook I/O is covered by the dataset package tests.
// - Signal delivery is not exercised; interruption is simulated with an
//   already-canceled context passed to runConvert.

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	mdtable "github.com/alnah/go-mdtable"
	"github.com/alnah/go-mdtable/internal/config"
	"github.com/alnah/go-mdtable/internal/dataset"
	"github.com/alnah/go-mdtable/internal/dateutil"
)

// ---------------------------------------------------------------------------
// TestConvert_EndToEnd
// ---------------------------------------------------------------------------

func TestConvert_EndToEnd(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := writeFile(t, dir, "in.csv", sampleCSV)
	out := filepath.Join(dir, "out.csv")

	env, stdout, stderr := testEnv(nil)
	code := runMain([]string{"mdtable", "convert", in, out, "--column", "Body", "--workers", "2"}, env)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}

	if !strings.Contains(stdout.String(), "Created "+out) {
		t.Errorf("stdout = %q, want Created line", stdout.String())
	}
	if !strings.Contains(stdout.String(), "3 rows, 1 tables, 1 warnings") {
		t.Errorf("stdout = %q, want summary", stdout.String())
	}
	if !strings.Contains(stderr.String(), "row kept unconverted") || !strings.Contains(stderr.String(), "row=2") {
		t.Errorf("stderr = %q, want warning for row 2", stderr.String())
	}

	ds, err := dataset.Load(out, dataset.LoadOptions{})
	if err != nil {
		t.Fatalf("loading output: %v", err)
	}

	wantHeader := append([]string{"ID", "Body"}, mdtable.ColumnNames()...)
	if !reflect.DeepEqual(ds.Header, wantHeader) {
		t.Fatalf("header = %q, want %q", ds.Header, wantHeader)
	}

	col := func(row int, name string) string {
		t.Helper()
		for i, h := range ds.Header {
			if h == name {
				return ds.Rows[row][i]
			}
		}
		t.Fatalf("column %q missing", name)
		return ""
	}

	// Row 0: converted table.
	if got := col(0, mdtable.ColumnTextWithoutTable); got != "Intro\nOutro" {
		t.Errorf("row 0 Text_Without_Table = %q, want %q", got, "Intro\nOutro")
	}
	if got := col(0, mdtable.ColumnMarkdownTable); got != "| a | b |\n|:--|--:|\n| 1 | 2 |" {
		t.Errorf("row 0 Markdown_Table = %q", got)
	}
	html := col(0, mdtable.ColumnHTMLTable)
	for _, want := range []string{`<table class="markdown-table">`, `data-style="text-align: left;"`, `data-style="text-align: right;"`} {
		if !strings.Contains(html, want) {
			t.Errorf("row 0 HTML_Table missing %q:\n%s", want, html)
		}
	}
	if got := col(0, mdtable.ColumnFinalHTMLWithCSS); !strings.HasPrefix(got, "Intro\n<style>") || !strings.HasSuffix(got, "\nOutro") {
		t.Errorf("row 0 Final_HTML_with_CSS = %q", got)
	}

	// Rows 1 and 2: passthrough.
	for _, row := range []int{1, 2} {
		body := col(row, "Body")
		if got := col(row, mdtable.ColumnTextWithoutTable); got != body {
			t.Errorf("row %d Text_Without_Table = %q, want original %q", row, got, body)
		}
		if got := col(row, mdtable.ColumnHTMLTable); got != "" {
			t.Errorf("row %d HTML_Table = %q, want empty", row, got)
		}
	}
}

func TestConvert_TSVAndQuiet(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := writeFile(t, dir, "in.tsv", "Body\n| x |\n")
	out := filepath.Join(dir, "out.tsv")

	env, stdout, stderr := testEnv(nil)
	if code := runMain([]string{"mdtable", "convert", "-q", in, out}, env); code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty with --quiet", stdout.String())
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("output not written: %v", err)
	}
}

func TestConvert_ColumnFallback(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := writeFile(t, dir, "in.csv", sampleCSV)
	out := filepath.Join(dir, "out.csv")

	env, _, stderr := testEnv(nil)
	if code := runMain([]string{"mdtable", "convert", in, out, "-C", "Missing"}, env); code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stderr.String(), "column not found") {
		t.Errorf("stderr = %q, want fallback warning", stderr.String())
	}
	if !strings.Contains(stderr.String(), "ID, Body") {
		t.Errorf("stderr = %q, want available columns", stderr.String())
	}
}

func TestConvert_LogFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := writeFile(t, dir, "in.csv", sampleCSV)
	out := filepath.Join(dir, "out.csv")
	logPath := writeFile(t, dir, "converter.log", "previous run\n")

	env, _, stderr := testEnv(nil)
	code := runMain([]string{"mdtable", "convert", in, out, "-C", "Body", "--log-file", logPath}, env)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	logText := string(data)
	if !strings.HasPrefix(logText, "previous run\n") {
		t.Errorf("log file was truncated:\n%s", logText)
	}
	if !strings.Contains(logText, "row=2") {
		t.Errorf("log file missing row warning:\n%s", logText)
	}
	if strings.Contains(stderr.String(), "row kept unconverted") {
		t.Errorf("warnings went to stderr with a log file: %q", stderr.String())
	}
}

func TestConvert_EnvironmentAndConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := writeFile(t, dir, "in.csv", "ID,Body\n1,\"| a |\n|---|\n| 1 |\"\n")
	cfgPath := writeFile(t, dir, "batch.yaml", "input:\n  column: ID\noutput:\n  suffix: _html\n")

	env, stdout, stderr := testEnv(map[string]string{
		"MDTABLE_CONFIG": cfgPath,
		"MDTABLE_COLUMN": "Body",
		"MDTABLE_COLUM":  "typo",
	})
	if code := runMain([]string{"mdtable", "convert", in}, env); code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}

	out := filepath.Join(dir, "in_html.csv")
	if !strings.Contains(stdout.String(), "Created "+out) {
		t.Errorf("stdout = %q, want suffixed output", stdout.String())
	}
	if !strings.Contains(stdout.String(), "1 rows, 1 tables, 0 warnings") {
		t.Errorf("stdout = %q, want MDTABLE_COLUMN to select Body", stdout.String())
	}
	if !strings.Contains(stderr.String(), "MDTABLE_COLUM") {
		t.Errorf("stderr = %q, want unknown variable warning", stderr.String())
	}
}

func TestConvert_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := writeFile(t, dir, "in.csv", sampleCSV)
	empty := writeFile(t, dir, "empty.csv", "Body\n")
	// The cell fits a workbook but its Final_HTML_with_CSS value does not.
	large := writeFile(t, dir, "large.csv", "Body\n\"| a |\n|---|\n| "+strings.Repeat("x", 32500)+" |\"\n")

	tests := []struct {
		name         string
		args         []string
		vars         map[string]string
		wantCode     int
		wantInStderr string
	}{
		{
			name:         "unsupported output format",
			args:         []string{in, filepath.Join(dir, "out.json")},
			wantCode:     ExitUsage,
			wantInStderr: "supported formats: .xlsx, .csv, .tsv",
		},
		{
			name:         "macro workbook output",
			args:         []string{in, filepath.Join(dir, "out.xlsm")},
			wantCode:     ExitUsage,
			wantInStderr: "cannot write xlsm",
		},
		{
			name:         "unsupported input format",
			args:         []string{filepath.Join(dir, "in.txt"), filepath.Join(dir, "out.csv")},
			wantCode:     ExitUsage,
			wantInStderr: "supported formats: .xlsx, .xlsm, .csv, .tsv",
		},
		{
			name:         "missing output without suffix",
			args:         []string{in},
			wantCode:     ExitUsage,
			wantInStderr: "output.suffix",
		},
		{
			name:     "too many arguments",
			args:     []string{in, "a.csv", "b.csv"},
			wantCode: ExitUsage,
		},
		{
			name:         "workers out of range",
			args:         []string{in, filepath.Join(dir, "out.csv"), "-w", "1000"},
			wantCode:     ExitUsage,
			wantInStderr: "--workers",
		},
		{
			name:         "invalid log level",
			args:         []string{in, filepath.Join(dir, "out.csv"), "--log-level", "loud"},
			wantCode:     ExitUsage,
			wantInStderr: "log.level",
		},
		{
			name:         "unknown config name",
			args:         []string{in, filepath.Join(dir, "out.csv"), "-c", "nosuchconfig"},
			wantCode:     ExitUsage,
			wantInStderr: "hint: use --config",
		},
		{
			name:         "empty dataset",
			args:         []string{empty, filepath.Join(dir, "out.csv")},
			wantCode:     ExitIO,
			wantInStderr: "add at least one data row",
		},
		{
			name:         "unwritable output directory",
			args:         []string{in, filepath.Join(dir, "missing", "out.csv")},
			wantCode:     ExitIO,
			wantInStderr: "save failed",
		},
		{
			name:         "workbook cell limit",
			args:         []string{large, filepath.Join(dir, "large.xlsx")},
			wantCode:     ExitIO,
			wantInStderr: `column "Final_HTML_with_CSS"`,
		},
		{
			name:         "workbook cell limit hint",
			args:         []string{large, filepath.Join(dir, "large2.xlsx")},
			wantCode:     ExitIO,
			wantInStderr: "write .csv or .tsv output",
		},
		{
			name:         "log file in missing directory",
			args:         []string{in, filepath.Join(dir, "out2.csv"), "--log-file", filepath.Join(dir, "missing", "x.log")},
			wantCode:     ExitIO,
			wantInStderr: "failed to open log file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, _, stderr := testEnv(tt.vars)
			args := append([]string{"mdtable", "convert"}, tt.args...)
			code := runMain(args, env)

			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nstderr: %s", code, tt.wantCode, stderr.String())
			}
			if tt.wantInStderr != "" && !strings.Contains(stderr.String(), tt.wantInStderr) {
				t.Errorf("stderr = %q, want containing %q", stderr.String(), tt.wantInStderr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunConvert_Interrupted
// ---------------------------------------------------------------------------

func TestRunConvert_Interrupted(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := writeFile(t, dir, "in.csv", sampleCSV)
	out := filepath.Join(dir, "out.csv")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	env, _, _ := testEnv(nil)
	err := runConvert(ctx, []string{in, out}, &convertFlags{}, config.DefaultConfig(), mdtable.NewConverter(), env)

	if !errors.Is(err, ErrInterrupted) {
		t.Fatalf("runConvert() error = %v, want ErrInterrupted", err)
	}
	if code := exitCodeFor(err); code != ExitInterrupted {
		t.Errorf("exit code = %d, want %d", code, ExitInterrupted)
	}
	if _, statErr := os.Stat(out); !errors.Is(statErr, os.ErrNotExist) {
		t.Errorf("output written after interruption: %v", statErr)
	}
}

// ---------------------------------------------------------------------------
// TestMergeFlags / TestResolveConfig - Priority: flags > env > config > defaults
// ---------------------------------------------------------------------------

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Input:   config.InputConfig{Column: "FromConfig", Sheet: "S1"},
		Workers: 2,
		Log:     config.LogConfig{Level: "info"},
	}
	flags := &convertFlags{
		input:   inputFlags{column: "FromFlag"},
		output:  outputFlags{sheet: "Out"},
		log:     logFlags{level: "debug"},
		workers: 8,
	}

	mergeFlags(flags, cfg)

	if cfg.Input.Column != "FromFlag" {
		t.Errorf("Input.Column = %q, want FromFlag", cfg.Input.Column)
	}
	if cfg.Input.Sheet != "S1" {
		t.Errorf("Input.Sheet = %q, want unchanged S1", cfg.Input.Sheet)
	}
	if cfg.Output.Sheet != "Out" {
		t.Errorf("Output.Sheet = %q, want Out", cfg.Output.Sheet)
	}
	if cfg.Workers != 8 {
		t.Errorf("Workers = %d, want 8", cfg.Workers)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestResolveConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "batch.yaml", "input:\n  column: FromFile\n  sheet: FileSheet\nworkers: 2\n")

	t.Run("env overrides file", func(t *testing.T) {
		t.Parallel()

		env, _, _ := testEnv(map[string]string{"MDTABLE_COLUMN": "FromEnv", "MDTABLE_WORKERS": "6"})
		cfg, err := resolveConfig(cfgPath, env)
		if err != nil {
			t.Fatalf("resolveConfig() error: %v", err)
		}
		if cfg.Input.Column != "FromEnv" {
			t.Errorf("Input.Column = %q, want FromEnv", cfg.Input.Column)
		}
		if cfg.Input.Sheet != "FileSheet" {
			t.Errorf("Input.Sheet = %q, want FileSheet", cfg.Input.Sheet)
		}
		if cfg.Workers != 6 {
			t.Errorf("Workers = %d, want 6", cfg.Workers)
		}
	})

	t.Run("flag path wins over MDTABLE_CONFIG", func(t *testing.T) {
		t.Parallel()

		env, _, _ := testEnv(map[string]string{"MDTABLE_CONFIG": filepath.Join(dir, "missing.yaml")})
		cfg, err := resolveConfig(cfgPath, env)
		if err != nil {
			t.Fatalf("resolveConfig() error: %v", err)
		}
		if cfg.Input.Column != "FromFile" {
			t.Errorf("Input.Column = %q, want FromFile", cfg.Input.Column)
		}
	})

	t.Run("no config uses defaults", func(t *testing.T) {
		t.Parallel()

		env, _, _ := testEnv(nil)
		cfg, err := resolveConfig("", env)
		if err != nil {
			t.Fatalf("resolveConfig() error: %v", err)
		}
		if *cfg != *config.DefaultConfig() {
			t.Errorf("cfg = %+v, want defaults", *cfg)
		}
	})

	t.Run("missing path is ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		env, _, _ := testEnv(nil)
		_, err := resolveConfig(filepath.Join(dir, "missing.yaml"), env)
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestResolvePaths
// ---------------------------------------------------------------------------

func TestResolvePaths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		positional []string
		suffix     string
		wantOut    string
		wantErr    error
	}{
		{name: "explicit output", positional: []string{"in.xlsx", "out.csv"}, wantOut: "out.csv"},
		{name: "suffix output", positional: []string{"data/in.xlsx"}, suffix: "_html", wantOut: "data/in_html.xlsx"},
		{name: "explicit wins over suffix", positional: []string{"in.csv", "x.tsv"}, suffix: "_html", wantOut: "x.tsv"},
		{name: "dated suffix", positional: []string{"in.csv"}, suffix: "_{date:compact}", wantOut: "in_20260102.csv"},
		{name: "bad date placeholder", positional: []string{"in.csv"}, suffix: "_{date:YYYY", wantErr: dateutil.ErrInvalidDateFormat},
		{name: "no input", positional: nil, wantErr: ErrNoInput},
		{name: "no output", positional: []string{"in.csv"}, wantErr: ErrNoOutput},
		{name: "xlsm input gets xlsm output", positional: []string{"in.xlsm"}, suffix: "_x", wantErr: dataset.ErrUnsupportedFormat},
		{name: "bad input", positional: []string{"in.doc", "out.csv"}, wantErr: dataset.ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := &config.Config{Output: config.OutputConfig{Suffix: tt.suffix}}
			_, out, err := resolvePaths(tt.positional, cfg, fixedNow)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("resolvePaths() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolvePaths() unexpected error: %v", err)
			}
			if out != tt.wantOut {
				t.Errorf("output = %q, want %q", out, tt.wantOut)
			}
		})
	}
}
