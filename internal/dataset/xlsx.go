package dataset

import (
	"fmt"
	"io"
	"slices"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the worksheet name used when none is configured.
const DefaultSheet = "Sheet1"

func readXLSX(path, sheet string) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	name, err := resolveSheet(f, sheet)
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", name, err)
	}
	return New(rows), nil
}

// resolveSheet returns sheet if present, or the first sheet when sheet is empty.
func resolveSheet(f *excelize.File, sheet string) (string, error) {
	sheets := f.GetSheetList()
	if sheet == "" {
		if len(sheets) == 0 {
			return "", ErrEmptyDataset
		}
		return sheets[0], nil
	}
	if !slices.Contains(sheets, sheet) {
		return "", fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
	}
	return sheet, nil
}

func listXLSXSheets(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.GetSheetList(), nil
}

// checkCellLengths returns ErrCellTooLong for the first value over
// excelize.TotalCellChars. SetSheetRow would truncate it silently.
func checkCellLengths(ds *Dataset) error {
	for i, record := range ds.Records() {
		for j, value := range record {
			n := utf8.RuneCountInString(value)
			if n <= excelize.TotalCellChars {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			column := ""
			if j < len(ds.Header) {
				column = ds.Header[j]
			}
			return fmt.Errorf("%w: cell %s (column %q) has %d characters, limit is %d",
				ErrCellTooLong, cell, column, n, excelize.TotalCellChars)
		}
	}
	return nil
}

// writeXLSX writes ds into a new single-sheet workbook. Cells are stored as
// strings, so text starting with "=" is never read as a formula.
func writeXLSX(w io.Writer, ds *Dataset, sheet string) error {
	if err := checkCellLengths(ds); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if sheet == "" {
		sheet = DefaultSheet
	}
	if sheet != DefaultSheet {
		if err := f.SetSheetName(DefaultSheet, sheet); err != nil {
			return fmt.Errorf("naming sheet %q: %w", sheet, err)
		}
	}

	for i, record := range ds.Records() {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &record); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	return f.Write(w)
}
