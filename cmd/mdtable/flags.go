package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage marks invalid flags or arguments.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// inputFlags selects the data to convert.
type inputFlags struct {
	column string
	sheet  string
}

// outputFlags controls the written file.
type outputFlags struct {
	sheet string
}

// logFlags controls diagnostics.
type logFlags struct {
	file  string
	level string
}

// convertFlags holds all flags of the convert command.
type convertFlags struct {
	common  commonFlags
	input   inputFlags
	output  outputFlags
	log     logFlags
	workers int
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log every row and timing")
}

// addInputFlags adds input selection flags to a FlagSet.
func addInputFlags(fs *flag.FlagSet, f *inputFlags) {
	fs.StringVarP(&f.column, "column", "C", "", "column holding the markdown text (default: first)")
	fs.StringVarP(&f.sheet, "sheet", "s", "", "worksheet to read (default: first)")
}

// addOutputFlags adds output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVar(&f.sheet, "output-sheet", "", "worksheet name of the written workbook")
}

// addLogFlags adds logging flags to a FlagSet.
func addLogFlags(fs *flag.FlagSet, f *logFlags) {
	fs.StringVar(&f.file, "log-file", "", "append log records to this file")
	fs.StringVar(&f.level, "log-level", "", "log level: debug, info, warn, error")
}

// newConvertFlagSet registers every convert flag on a new FlagSet.
// Shared by parsing and shell completion.
func newConvertFlagSet(f *convertFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	addCommonFlags(fs, &f.common)
	addInputFlags(fs, &f.input)
	addOutputFlags(fs, &f.output)
	addLogFlags(fs, &f.log)
	return fs
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, usageOut io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newConvertFlagSet(f)
	fs.SetOutput(io.Discard)
	fs.Usage = func() { printConvertUsage(usageOut) }

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// columnsFlags holds flags of the columns command.
type columnsFlags struct {
	sheet string
}

func newColumnsFlagSet(f *columnsFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("columns", flag.ContinueOnError)
	fs.StringVarP(&f.sheet, "sheet", "s", "", "worksheet to read (default: first)")
	return fs
}

// parseColumnsFlags parses columns command flags and returns positional args.
func parseColumnsFlags(args []string, usageOut io.Writer) (*columnsFlags, []string, error) {
	f := &columnsFlags{}
	fs := newColumnsFlagSet(f)
	fs.SetOutput(io.Discard)
	fs.Usage = func() { printColumnsUsage(usageOut) }

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

func newConfigFlagSet(f *commonFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	return fs
}

// parseConfigFlags parses config command flags.
func parseConfigFlags(args []string, usageOut io.Writer) (*commonFlags, []string, error) {
	f := &commonFlags{}
	fs := newConfigFlagSet(f)
	fs.SetOutput(io.Discard)
	fs.Usage = func() { printConfigUsage(usageOut) }

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseFlagSet parses args, passing flag.ErrHelp through unchanged and
// marking every other failure as ErrUsage.
func parseFlagSet(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}
