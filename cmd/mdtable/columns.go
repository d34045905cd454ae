package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-mdtable/internal/dataset"
)

// runColumnsCmd prints the header names of a dataset, one per line.
// Unnamed columns are shown by position.
func runColumnsCmd(args []string, env *Environment) error {
	flags, positional, err := parseColumnsFlags(args, env.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if len(positional) == 0 {
		return ErrNoInput
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: expected <input>, got %d arguments", ErrUsage, len(positional))
	}

	sheet := flags.sheet
	if sheet == "" {
		sheet = loadEnvConfig(env.Getenv).Sheet
	}

	path := positional[0]
	columns, err := dataset.ListColumns(path, dataset.LoadOptions{Sheet: sheet})
	if err != nil {
		return fmt.Errorf("load failed: %w%s", err, loadHint(path, err))
	}

	for i, name := range columns {
		if name == "" {
			name = fmt.Sprintf("(column %d)", i+1)
		}
		fmt.Fprintln(env.Stdout, name)
	}
	return nil
}
