// Package dataset reads and writes the tabular files whose text cells are
// converted: Excel workbooks through excelize, CSV and TSV through
// encoding/csv.
//
// A Dataset is a header row plus data rows. Rows are padded on read so every
// row is as wide as the widest one. Load and Save wrap every failure in
// *SourceError and *SinkError respectively, so callers can tell an unreadable
// input from an unwritable output with errors.As.
package dataset
