package pipeline

import "strings"

// lineSeparator splits a text into lines and joins segments back together.
const lineSeparator = "\n"

// noTable is the Span.Start value when a text holds no table.
const noTable = -1

// Span is the half-open range [Start, End) of line indices covered by a table.
type Span struct {
	Start int
	End   int
}

// Found reports whether the span identifies a table.
func (s Span) Found() bool {
	return s.Start != noTable
}

// Segments holds a text split around its first table.
type Segments struct {
	Before string
	Table  string
	After  string

	// Remainder is the text with the table lines removed and the surviving
	// lines rejoined with newlines. Equal to Before when there is no table.
	Remainder string
}

// HasTable reports whether a table was extracted.
func (s Segments) HasTable() bool {
	return s.Table != ""
}

// LocateSpan finds the first table in lines.
//
// A table starts at the first row immediately followed by a separator row,
// and runs until the first line that is not a table row, or to the end of
// input. Only the first table is located.
func LocateSpan(lines []string) Span {
	start := noTable
	for i := 0; i+1 < len(lines); i++ {
		if IsTableRow(lines[i]) && IsSeparatorRow(lines[i+1]) {
			start = i
			break
		}
	}
	if start == noTable {
		return Span{Start: noTable, End: noTable}
	}

	end := len(lines)
	for i := start + 2; i < len(lines); i++ {
		if !IsTableRow(lines[i]) {
			end = i
			break
		}
	}

	return Span{Start: start, End: end}
}

// Split separates text into the prose before the first table, the table
// source itself, and the prose after it. Without a table the whole text is
// returned as Before.
func Split(text string) Segments {
	lines := strings.Split(text, lineSeparator)

	span := LocateSpan(lines)
	if !span.Found() {
		return Segments{Before: text, Remainder: text}
	}

	remaining := make([]string, 0, len(lines)-(span.End-span.Start))
	remaining = append(remaining, lines[:span.Start]...)
	remaining = append(remaining, lines[span.End:]...)

	return Segments{
		Before:    strings.Join(lines[:span.Start], lineSeparator),
		Table:     strings.Join(lines[span.Start:span.End], lineSeparator),
		After:     strings.Join(lines[span.End:], lineSeparator),
		Remainder: strings.Join(remaining, lineSeparator),
	}
}
