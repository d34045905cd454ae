package pipeline

import (
	"regexp"
	"strings"
)

// Precompiled row patterns. Both are matched against the trimmed line.
var (
	// | cell | cell |
	tableRowPattern = regexp.MustCompile(`^\|(.+\|)+$`)

	// |---|:---:|---:|
	separatorRowPattern = regexp.MustCompile(`^\|(\s*:?-+:?\s*\|)+$`)
)

// IsTableRow reports whether line is a pipe-delimited table row.
// Leading and trailing whitespace is ignored.
func IsTableRow(line string) bool {
	return tableRowPattern.MatchString(strings.TrimSpace(line))
}

// IsSeparatorRow reports whether line is a delimiter row made of hyphen
// cells with optional alignment colons.
func IsSeparatorRow(line string) bool {
	return separatorRowPattern.MatchString(strings.TrimSpace(line))
}
