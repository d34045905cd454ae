// Package mdtable converts the markdown table embedded in free-form text into
// styled HTML, leaving the surrounding prose untouched.
//
// # Quick Start
//
//	conv := mdtable.NewConverter()
//
//	res, err := conv.Convert("Intro\n| A | B |\n|---|---|\n| 1 | 2 |\nOutro")
//	if err != nil {
//	    // The table could not be rendered; res holds the passthrough values.
//	    log.Println("warning:", err)
//	}
//	fmt.Println(res.FinalHTMLWithCSS)
//
// # Conversion Pipeline
//
// Each text goes through these stages:
//
//  1. Locate the first pipe table: a row immediately followed by a
//     delimiter row such as |:---|:---:|---:|, extended while lines are rows
//  2. Split the text into before, table and after segments
//  3. Render the table with goldmark and move column alignment into
//     data-style attributes; the table gets class="markdown-table"
//  4. Assemble six representations (see Result)
//
// A text without a table passes through unchanged: TextWithoutTable,
// HTML5Compliant and FinalHTMLWithCSS equal the input and the other fields are
// empty.
//
// # Columns
//
// ConvertColumn applies Convert to every value of a column in parallel and
// returns six output columns aligned with the input, plus one RowError per
// row whose table could not be rendered:
//
//	conv := mdtable.NewConverter(mdtable.WithWorkers(4))
//	out, err := conv.ConvertColumn(ctx, values)
//	for _, w := range out.Warnings {
//	    log.Printf("row %d: %v", w.Row, w.Err)
//	}
//
// Converter is safe for concurrent use.
package mdtable
