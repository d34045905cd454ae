package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// ErrMalformedMarkup indicates a table span could not be rendered as an HTML table.
var ErrMalformedMarkup = errors.New("malformed table markup")

// TableClass is the class attached to every rendered table element.
const TableClass = "markdown-table"

var (
	// Inline alignment as emitted by the markdown engine. Both
	// style="text-align:center" and style="text-align: center;" are accepted.
	// The leading whitespace keeps already rewritten data-style attributes
	// from matching again.
	inlineAlignPattern = regexp.MustCompile(`(\s)style="text-align:\s*(left|center|right);?"`)

	bareTableTag   = "<table>"
	taggedTableTag = `<table class="` + TableClass + `">`

	// lineBreakTag matches <br>, <br/> and <br /> in any case.
	lineBreakTag = regexp.MustCompile(`(?i)<br\s*/?>`)
)

// LineBreakPlaceholder stands in for <br> while goldmark renders a table.
// Goldmark omits raw HTML, but <br> is the only way to break a line inside
// a pipe table cell.
const LineBreakPlaceholder = "\uE002" // U+E002: Private Use Area

// protectLineBreaks swaps <br> tags for LineBreakPlaceholder. Placeholders
// already present in source are dropped so they cannot turn into tags.
func protectLineBreaks(source string) string {
	source = strings.ReplaceAll(source, LineBreakPlaceholder, "")
	return lineBreakTag.ReplaceAllString(source, LineBreakPlaceholder)
}

// restoreLineBreaks turns placeholders back into <br> tags after rendering.
func restoreLineBreaks(html string) string {
	return strings.ReplaceAll(html, LineBreakPlaceholder, "<br>")
}

// TableRenderer converts the source of one markdown table to HTML.
type TableRenderer interface {
	RenderTable(source string) (string, error)
}

// GoldmarkRenderer renders tables with goldmark restricted to the table
// extension. A goldmark.Markdown is safe for concurrent use, so one renderer
// can serve every worker of a batch.
type GoldmarkRenderer struct {
	md goldmark.Markdown
}

// NewGoldmarkRenderer creates a GoldmarkRenderer that emits cell alignment
// as inline style, which PostProcessTable then turns into data-style.
func NewGoldmarkRenderer() *GoldmarkRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.NewTable(
				extension.WithTableCellAlignMethod(extension.TableCellAlignStyle),
			),
		),
	)
	return &GoldmarkRenderer{md: md}
}

// RenderTable converts a markdown table to an HTML fragment.
// Raw HTML is omitted except <br>, which is kept as a line break.
// Returns ErrMalformedMarkup if goldmark fails or does not recognize the
// source as a table (header and delimiter cell counts differ, indented
// code, and so on).
func (r *GoldmarkRenderer) RenderTable(source string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(protectLineBreaks(source)), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedMarkup, err)
	}

	out := buf.String()
	if !strings.Contains(out, bareTableTag) {
		return "", fmt.Errorf("%w: no table recognized in %d-line span", ErrMalformedMarkup, strings.Count(source, lineSeparator)+1)
	}

	return PostProcessTable(restoreLineBreaks(out)), nil
}

// PostProcessTable moves inline alignment into data-style attributes and
// tags the table element with TableClass. Running it twice is a no-op.
func PostProcessTable(html string) string {
	html = inlineAlignPattern.ReplaceAllString(html, `${1}data-style="text-align: ${2};"`)
	return strings.ReplaceAll(html, bareTableTag, taggedTableTag)
}

// Compile-time interface check.
var _ TableRenderer = (*GoldmarkRenderer)(nil)
