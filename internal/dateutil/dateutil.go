// Package dateutil expands date placeholders in file name fragments such as
// the configured output suffix.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format or placeholder.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length.
const MaxDateFormatLength = 50

// DefaultDateFormat is used by a bare {date} placeholder.
const DefaultDateFormat = "YYYY-MM-DD"

// dateTokens maps format tokens to Go layout components.
// Ordered by length descending for greedy matching.
var dateTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"HH", "15"},
	{"mm", "04"},
	{"ss", "05"},
	{"M", "1"},
	{"D", "2"},
}

// DatePresets provides named shortcuts usable as {date:<preset>}.
var DatePresets = map[string]string{
	"iso":     "YYYY-MM-DD",
	"compact": "YYYYMMDD",
	"month":   "YYYY-MM",
	"stamp":   "YYYYMMDD-HHmmss",
}

// FormatDate renders t with a token format.
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D, HH, mm, ss.
// Text in brackets is copied literally: [v]YYYY gives "v2024".
// Other characters are copied as is.
func FormatDate(format string, t time.Time) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var b strings.Builder
	b.Grow(len(format) + 8)

	i := 0
	for i < len(format) {
		if format[i] == '[' {
			end := strings.IndexByte(format[i+1:], ']')
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			b.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		matched := false
		for _, tok := range dateTokens {
			if strings.HasPrefix(format[i:], tok.token) {
				// Each token is formatted alone so surrounding literals are
				// never read as layout elements.
				b.WriteString(t.Format(tok.goFmt))
				i += len(tok.token)
				matched = true
				break
			}
		}

		if !matched {
			b.WriteByte(format[i])
			i++
		}
	}

	return b.String(), nil
}

// ExpandPlaceholders replaces every {date} and {date:FORMAT} in s with t
// rendered by FormatDate. FORMAT may name a preset (case-insensitive).
// Other brace groups are left untouched.
func ExpandPlaceholders(s string, t time.Time) (string, error) {
	if !strings.Contains(s, "{date") {
		return s, nil
	}

	var b strings.Builder
	rest := s
	for {
		i := strings.Index(rest, "{date")
		if i < 0 {
			b.WriteString(rest)
			break
		}
		end := strings.IndexByte(rest[i:], '}')
		if end < 0 {
			return "", fmt.Errorf("%w: unclosed placeholder in %q", ErrInvalidDateFormat, s)
		}
		end += i

		inner := rest[i+1 : end]
		var format string
		switch {
		case inner == "date":
			format = DefaultDateFormat
		case strings.HasPrefix(inner, "date:"):
			format = inner[len("date:"):]
			if preset, ok := DatePresets[strings.ToLower(format)]; ok {
				format = preset
			}
		default:
			b.WriteString(rest[:end+1])
			rest = rest[end+1:]
			continue
		}

		out, err := FormatDate(format, t)
		if err != nil {
			return "", err
		}
		b.WriteString(rest[:i])
		b.WriteString(out)
		rest = rest[end+1:]
	}

	return b.String(), nil
}
