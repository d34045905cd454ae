package mdtable

// Output column names, in the order returned by Result.Fields.
const (
	ColumnTextWithoutTable = "Text_Without_Table"
	ColumnMarkdownTable    = "Markdown_Table"
	ColumnHTMLTable        = "HTML_Table"
	ColumnCSS              = "CSS"
	ColumnHTML5Compliant   = "HTML5_Compliant"
	ColumnFinalHTMLWithCSS = "Final_HTML_with_CSS"
)

// ColumnNames returns the six output column names in Result.Fields order.
func ColumnNames() []string {
	return []string{
		ColumnTextWithoutTable,
		ColumnMarkdownTable,
		ColumnHTMLTable,
		ColumnCSS,
		ColumnHTML5Compliant,
		ColumnFinalHTMLWithCSS,
	}
}

// Result holds the six representations derived from one text.
type Result struct {
	TextWithoutTable string // text with the table lines removed
	MarkdownTable    string // table source, verbatim
	HTMLTable        string // rendered table
	CSS              string // <style> block for rendered tables
	HTML5Compliant   string // before + table HTML + after, no stylesheet
	FinalHTMLWithCSS string // before + stylesheet + table HTML + after
}

// Passthrough returns the result for a text without a usable table.
func Passthrough(text string) Result {
	return Result{
		TextWithoutTable: text,
		HTML5Compliant:   text,
		FinalHTMLWithCSS: text,
	}
}

// HasTable reports whether a table was converted.
func (r Result) HasTable() bool {
	return r.MarkdownTable != ""
}

// Fields returns the six values in ColumnNames order.
func (r Result) Fields() []string {
	return []string{
		r.TextWithoutTable,
		r.MarkdownTable,
		r.HTMLTable,
		r.CSS,
		r.HTML5Compliant,
		r.FinalHTMLWithCSS,
	}
}

// ColumnResult holds the conversion of a whole column.
// Rows[i] corresponds to input value i.
type ColumnResult struct {
	Rows     []Result
	Tables   int        // rows where a table was converted
	Warnings []RowError // rows that fell back to passthrough, sorted by Row
}

// Len returns the number of rows.
func (c *ColumnResult) Len() int {
	return len(c.Rows)
}

// Columns returns the six output columns in ColumnNames order.
// Every column has Len() values.
func (c *ColumnResult) Columns() [][]string {
	cols := make([][]string, len(ColumnNames()))
	for i := range cols {
		cols[i] = make([]string, len(c.Rows))
	}
	for row, res := range c.Rows {
		for i, v := range res.Fields() {
			cols[i][row] = v
		}
	}
	return cols
}
