// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForColumnFallback returns a hint listing the columns the user can pick from.
func ForColumnFallback(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("use --column with one of: " + quoteAll(available))
}

// ForSheetNotFound returns a hint listing the sheets of the workbook.
func ForSheetNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available sheets: " + quoteAll(available))
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config with a path and creating a config in the user config dir.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Suggest the first user-level candidate, not a cwd-relative one.
	for _, p := range searchedPaths {
		if filepath.IsAbs(p) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForUnsupportedFormat returns a hint naming the accepted extensions.
func ForUnsupportedFormat(extensions []string) string {
	if len(extensions) == 0 {
		return ""
	}
	return format("supported formats: " + strings.Join(extensions, ", "))
}

// ForOutputWrite returns hints for errors writing the output file.
func ForOutputWrite() string {
	return formatHints([]string{
		"check parent directory exists and is writable",
		"close the file if a spreadsheet application has it open",
	})
}

// ForCellTooLong returns hints for values that do not fit a workbook cell.
func ForCellTooLong() string {
	return formatHints([]string{
		"write .csv or .tsv output, which has no cell length limit",
		"split the table across several rows of the input",
	})
}

// ForEmptyDataset returns a hint for inputs with no data rows.
func ForEmptyDataset() string {
	return format("the first row is read as the header; add at least one data row")
}

func quoteAll(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "\"" + v + "\""
	}
	return strings.Join(quoted, ", ")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
