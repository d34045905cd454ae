package dataset

import (
	"encoding/csv"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

func delimiter(f Format) rune {
	if f == FormatTSV {
		return '\t'
	}
	return ','
}

func readCSV(path string, format Format) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	// Spreadsheet exports often start with a byte order mark; UTF-16 text
	// exports are recognized by theirs. Without one the input is UTF-8.
	decoded := transform.NewReader(file, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	r := csv.NewReader(decoded)
	r.Comma = delimiter(format)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	return New(records), nil
}

func writeCSV(w io.Writer, ds *Dataset, format Format) error {
	cw := csv.NewWriter(w)
	cw.Comma = delimiter(format)
	return cw.WriteAll(ds.Records())
}
