package dataset

import (
	"fmt"
	"io"

	"github.com/alnah/go-mdtable/internal/fileutil"
)

// LoadOptions configures reading.
type LoadOptions struct {
	// Sheet selects the worksheet of a workbook. Empty means the first sheet.
	// Ignored for CSV and TSV.
	Sheet string
}

// SaveOptions configures writing.
type SaveOptions struct {
	// Sheet names the worksheet of a written workbook. Empty means DefaultSheet.
	Sheet string
}

const outputPerm = 0o644

// Load reads the dataset at path. The file must hold a header and at least
// one data row. Every failure is a *SourceError.
func Load(path string, opts LoadOptions) (*Dataset, error) {
	ds, err := read(path, opts)
	if err != nil {
		return nil, &SourceError{Path: path, Err: err}
	}
	if err := ds.Validate(); err != nil {
		return nil, &SourceError{Path: path, Err: err}
	}
	return ds, nil
}

// ListColumns returns the header of the dataset at path.
func ListColumns(path string, opts LoadOptions) ([]string, error) {
	ds, err := read(path, opts)
	if err != nil {
		return nil, &SourceError{Path: path, Err: err}
	}
	if ds.Width() == 0 {
		return nil, &SourceError{Path: path, Err: ErrEmptyDataset}
	}
	return ds.Header, nil
}

// ListSheets returns the worksheet names of a workbook. CSV and TSV files
// have no sheets and return nil.
func ListSheets(path string) ([]string, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, &SourceError{Path: path, Err: err}
	}
	if format != FormatXLSX && format != FormatXLSM {
		return nil, nil
	}
	sheets, err := listXLSXSheets(path)
	if err != nil {
		return nil, &SourceError{Path: path, Err: err}
	}
	return sheets, nil
}

// Save writes ds to path, replacing any existing file only once the whole
// dataset has been encoded. Every failure is a *SinkError.
func Save(path string, ds *Dataset, opts SaveOptions) error {
	format, err := FormatFor(path)
	if err != nil {
		return &SinkError{Path: path, Err: err}
	}
	if !format.Writable() {
		return &SinkError{Path: path, Err: fmt.Errorf("%w: cannot write %s", ErrUnsupportedFormat, format)}
	}

	err = fileutil.WriteFileAtomic(path, outputPerm, func(w io.Writer) error {
		if format == FormatXLSX {
			return writeXLSX(w, ds, opts.Sheet)
		}
		return writeCSV(w, ds, format)
	})
	if err != nil {
		return &SinkError{Path: path, Err: err}
	}
	return nil
}

func read(path string, opts LoadOptions) (*Dataset, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatXLSX, FormatXLSM:
		return readXLSX(path, opts.Sheet)
	default:
		return readCSV(path, format)
	}
}
