package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	mdtable "github.com/alnah/go-mdtable"
	"github.com/alnah/go-mdtable/internal/config"
	"github.com/alnah/go-mdtable/internal/dataset"
	"github.com/alnah/go-mdtable/internal/dateutil"
	"github.com/alnah/go-mdtable/internal/fileutil"
	"github.com/alnah/go-mdtable/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput     = errors.New("no input specified")
	ErrNoOutput    = errors.New("no output specified and output.suffix is not configured")
	ErrInterrupted = errors.New("interrupted")
)

// ColumnConverter is the batch conversion contract used by the convert command.
type ColumnConverter interface {
	ConvertColumn(ctx context.Context, values []string) (*mdtable.ColumnResult, error)
	Workers() int
}

// Compile-time interface implementation check.
var _ ColumnConverter = (*mdtable.Converter)(nil)

// runConvertCmd parses flags and runs a conversion with the goldmark converter.
func runConvertCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if flags.workers < 0 || flags.workers > config.MaxWorkers {
		return fmt.Errorf("%w: --workers must be between 0 and %d, got %d", ErrUsage, config.MaxWorkers, flags.workers)
	}

	cfg, err := resolveConfig(flags.common.config, env)
	if err != nil {
		return err
	}
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	conv := mdtable.NewConverter(mdtable.WithWorkers(cfg.Workers))
	return runConvert(ctx, positional, flags, cfg, conv, env)
}

// runConvert loads the input, converts the selected column, and saves the
// augmented dataset. Nothing is written when ctx is canceled.
func runConvert(ctx context.Context, positional []string, flags *convertFlags, cfg *config.Config, conv ColumnConverter, env *Environment) error {
	inputPath, outputPath, err := resolvePaths(positional, cfg, env.Now())
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(cfg.Log, flags.common.quiet, flags.common.verbose, env.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	warnUnknownEnvVars(logger, env.Environ())

	start := env.Now()
	logger.Debug("starting conversion",
		"input", inputPath, "output", outputPath, "workers", conv.Workers())

	ds, err := dataset.Load(inputPath, dataset.LoadOptions{Sheet: cfg.Input.Sheet})
	if err != nil {
		return fmt.Errorf("load failed: %w%s", err, loadHint(inputPath, err))
	}

	values, used, fellBack, err := ds.Column(cfg.Input.Column)
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}
	logColumnChoice(logger, cfg.Input.Column, used, fellBack, ds.Header)

	result, err := conv.ConvertColumn(ctx, values)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInterrupted, err)
	}
	logRowWarnings(logger, result.Warnings)

	if err := ds.AppendColumns(mdtable.ColumnNames(), result.Columns()); err != nil {
		return err
	}

	if err := dataset.Save(outputPath, ds, dataset.SaveOptions{Sheet: cfg.Output.Sheet}); err != nil {
		return fmt.Errorf("save failed: %w%s", err, saveHint(err))
	}

	elapsed := env.Now().Sub(start)
	logger.Info("conversion finished",
		"rows", result.Len(), "tables", result.Tables, "warnings", len(result.Warnings),
		"elapsed", elapsed.Round(time.Millisecond))

	if !flags.common.quiet {
		printSummary(env.Stdout, outputPath, result, elapsed, flags.common.verbose)
	}
	return nil
}

// resolveConfig loads the config named by the flag or MDTABLE_CONFIG and
// applies environment overrides. Without either, defaults are used.
func resolveConfig(flagConfig string, env *Environment) (*config.Config, error) {
	envCfg := loadEnvConfig(env.Getenv)

	name := flagConfig
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.input.column != "" {
		cfg.Input.Column = flags.input.column
	}
	if flags.input.sheet != "" {
		cfg.Input.Sheet = flags.input.sheet
	}
	if flags.output.sheet != "" {
		cfg.Output.Sheet = flags.output.sheet
	}
	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}
	if flags.log.file != "" {
		cfg.Log.File = flags.log.file
	}
	if flags.log.level != "" {
		cfg.Log.Level = flags.log.level
	}
}

// resolvePaths returns the input and output paths. The output may be omitted
// when output.suffix is configured; date placeholders in the suffix are
// expanded with now. Both formats are checked before any work starts.
func resolvePaths(positional []string, cfg *config.Config, now time.Time) (string, string, error) {
	switch len(positional) {
	case 0:
		return "", "", ErrNoInput
	case 1, 2:
	default:
		return "", "", fmt.Errorf("%w: expected <input> [output], got %d arguments", ErrUsage, len(positional))
	}

	input := positional[0]
	if _, err := dataset.FormatFor(input); err != nil {
		return "", "", fmt.Errorf("input: %w%s", err, hints.ForUnsupportedFormat(dataset.ReadableExtensions()))
	}

	var output string
	if len(positional) == 2 {
		output = positional[1]
	} else {
		if cfg.Output.Suffix == "" {
			return "", "", fmt.Errorf("%w: %w", ErrUsage, ErrNoOutput)
		}
		suffix, err := dateutil.ExpandPlaceholders(cfg.Output.Suffix, now)
		if err != nil {
			return "", "", fmt.Errorf("output.suffix: %w", err)
		}
		output, err = fileutil.SuffixedPath(input, suffix)
		if err != nil {
			return "", "", err
		}
	}

	format, err := dataset.FormatFor(output)
	if err != nil || !format.Writable() {
		if err == nil {
			err = fmt.Errorf("%w: cannot write %s", dataset.ErrUnsupportedFormat, format)
		}
		return "", "", fmt.Errorf("output: %w%s", err, hints.ForUnsupportedFormat(dataset.WritableExtensions()))
	}

	return input, output, nil
}

// loadHint returns an actionable hint for a load failure, or "".
func loadHint(path string, err error) string {
	switch {
	case errors.Is(err, dataset.ErrSheetNotFound):
		sheets, _ := dataset.ListSheets(path)
		return hints.ForSheetNotFound(sheets)
	case errors.Is(err, dataset.ErrEmptyDataset):
		return hints.ForEmptyDataset()
	case errors.Is(err, dataset.ErrUnsupportedFormat):
		return hints.ForUnsupportedFormat(dataset.ReadableExtensions())
	}
	return ""
}

// saveHint returns an actionable hint for a save failure.
func saveHint(err error) string {
	if errors.Is(err, dataset.ErrCellTooLong) {
		return hints.ForCellTooLong()
	}
	return hints.ForOutputWrite()
}

func logColumnChoice(logger *slog.Logger, requested, used string, fellBack bool, header []string) {
	switch {
	case !fellBack:
		logger.Debug("converting column", "column", used)
	case requested == "":
		logger.Info("no column selected, using first column", "column", used)
	default:
		logger.Warn("column not found, using first column",
			"requested", requested, "column", used,
			"available", strings.Join(header, ", "))
	}
}

// logRowWarnings records one warning per row that kept passthrough values.
// Row numbers are 0-based data row indexes.
func logRowWarnings(logger *slog.Logger, warnings []mdtable.RowError) {
	for _, w := range warnings {
		logger.Warn("row kept unconverted", "row", w.Row, "err", w.Err)
	}
}

// printSummary prints the created file and the row/table/warning counts.
func printSummary(w io.Writer, outputPath string, result *mdtable.ColumnResult, elapsed time.Duration, verbose bool) {
	fmt.Fprintf(w, "Created %s\n", outputPath)
	if verbose {
		fmt.Fprintf(w, "%d rows, %d tables, %d warnings (%v)\n",
			result.Len(), result.Tables, len(result.Warnings), elapsed.Round(time.Millisecond))
		return
	}
	fmt.Fprintf(w, "%d rows, %d tables, %d warnings\n", result.Len(), result.Tables, len(result.Warnings))
}
