package mdtable

import (
	"errors"
	"fmt"

	"github.com/alnah/go-mdtable/internal/pipeline"
)

// lineSeparator joins the segments of composite HTML documents.
const lineSeparator = "\n"

// TableRenderer converts the source of one markdown table to HTML.
// Implementations must be safe for concurrent use.
type TableRenderer interface {
	RenderTable(source string) (string, error)
}

// Compile-time interface implementation checks.
var (
	_ TableRenderer          = (*pipeline.GoldmarkRenderer)(nil)
	_ pipeline.TableRenderer = TableRenderer(nil)
)

// Converter turns text cells into table-aware HTML.
// Create with NewConverter. A Converter holds no per-row state.
type Converter struct {
	renderer TableRenderer
	css      string
	workers  int
}

// Option configures a Converter.
type Option func(*Converter)

// WithRenderer replaces the goldmark table renderer.
// The renderer output is used as-is; PostProcessTable is not applied again.
func WithRenderer(r TableRenderer) Option {
	if r == nil {
		panic("mdtable: WithRenderer renderer must not be nil")
	}
	return func(c *Converter) {
		c.renderer = r
	}
}

// WithWorkers sets how many rows ConvertColumn processes in parallel.
// n <= 0 selects ResolvePoolSize(0).
func WithWorkers(n int) Option {
	return func(c *Converter) {
		c.workers = n
	}
}

// NewConverter creates a Converter using goldmark and the embedded stylesheet.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		renderer: pipeline.NewGoldmarkRenderer(),
		css:      pipeline.Stylesheet(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.workers = ResolvePoolSize(c.workers)
	return c
}

// Workers returns the parallelism used by ConvertColumn.
func (c *Converter) Workers() int {
	return c.workers
}

// Convert extracts the first table of text and builds the six representations.
//
// A text without a table yields Passthrough(text) and a nil error. When a
// table is found but cannot be rendered, Convert returns Passthrough(text)
// together with an error wrapping ErrMalformedMarkup. Renderer panics are
// recovered the same way.
func (c *Converter) Convert(text string) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = Passthrough(text)
			err = fmt.Errorf("%w: internal error: %v", ErrMalformedMarkup, r)
		}
	}()

	seg := pipeline.Split(text)
	if !seg.HasTable() {
		return Passthrough(text), nil
	}

	html, err := c.renderer.RenderTable(seg.Table)
	if err != nil {
		if !errors.Is(err, ErrMalformedMarkup) {
			err = fmt.Errorf("%w: %v", ErrMalformedMarkup, err)
		}
		return Passthrough(text), err
	}

	return Result{
		TextWithoutTable: seg.Remainder,
		MarkdownTable:    seg.Table,
		HTMLTable:        html,
		CSS:              c.css,
		HTML5Compliant:   seg.Before + lineSeparator + html + lineSeparator + seg.After,
		FinalHTMLWithCSS: seg.Before + lineSeparator + c.css + lineSeparator + html + lineSeparator + seg.After,
	}, nil
}

// Locate splits text around its first table. Without a table, before is the
// whole text and table and after are empty.
func Locate(text string) (before, table, after string) {
	seg := pipeline.Split(text)
	return seg.Before, seg.Table, seg.After
}

// IsTableRow reports whether line is a pipe-delimited table row.
func IsTableRow(line string) bool {
	return pipeline.IsTableRow(line)
}

// IsSeparatorRow reports whether line is a table delimiter row.
func IsSeparatorRow(line string) bool {
	return pipeline.IsSeparatorRow(line)
}

// Stylesheet returns the <style> block shared by every converted table.
func Stylesheet() string {
	return pipeline.Stylesheet()
}
