package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdtable <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert     Convert markdown tables in a column to HTML")
	fmt.Fprintln(w, "  columns     List the columns of a file")
	fmt.Fprintln(w, "  config      Show the effective configuration")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdtable help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdtable convert <input> [output] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert the first markdown table of every cell in one column to HTML.")
	fmt.Fprintln(w, "The output holds the original columns plus:")
	fmt.Fprintln(w, "  Text_Without_Table, Markdown_Table, HTML_Table, CSS,")
	fmt.Fprintln(w, "  HTML5_Compliant, Final_HTML_with_CSS")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input     .xlsx, .xlsm, .csv or .tsv file")
	fmt.Fprintln(w, "  output    .xlsx, .csv or .tsv file (optional if config has output.suffix)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  output.suffix may contain {date} or {date:FORMAT}, e.g. _{date:compact}.")
	fmt.Fprintln(w, "  Presets: iso, compact, month, stamp.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input:")
	fmt.Fprintln(w, "  -C, --column <name>       Column holding the markdown text (default: first)")
	fmt.Fprintln(w, "  -s, --sheet <name>        Worksheet to read (default: first)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "      --output-sheet <name> Worksheet name of the written workbook")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Processing:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Logging:")
	fmt.Fprintln(w, "      --log-file <path>     Append log records to this file")
	fmt.Fprintln(w, "      --log-level <s>       Level: debug, info, warn, error")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Log every row and timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MDTABLE_CONFIG, MDTABLE_COLUMN, MDTABLE_SHEET, MDTABLE_WORKERS,")
	fmt.Fprintln(w, "  MDTABLE_LOG_FILE, MDTABLE_LOG_LEVEL")
	fmt.Fprintln(w, "  Priority: flags > environment > config file > defaults")
}

// printColumnsUsage prints usage for the columns command.
func printColumnsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdtable columns <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List the header names of a file, one per line.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -s, --sheet <name>        Worksheet to read (default: first)")
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdtable config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Show the configuration convert would use, as YAML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
}

// runHelp prints help for a specific command.
// Returns false if the command is unknown.
func runHelp(args []string, env *Environment) bool {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return true
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "columns":
		printColumnsUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: mdtable version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: mdtable help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return false
	}
	return true
}
