package dataset

import (
	"errors"
	"fmt"
)

// Sentinel errors for dataset operations.
var (
	// ErrEmptyDataset indicates a file with no columns or no data rows.
	ErrEmptyDataset = errors.New("dataset is empty")

	// ErrColumnLength indicates appended columns do not match the row count.
	ErrColumnLength = errors.New("column length does not match row count")

	// ErrUnsupportedFormat indicates a file extension with no reader or writer.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrSheetNotFound indicates the requested worksheet does not exist.
	ErrSheetNotFound = errors.New("sheet not found")

	// ErrCellTooLong indicates a value exceeds the workbook cell limit.
	ErrCellTooLong = errors.New("cell value too long for workbook")
)

// SourceError reports a failure to read the input dataset.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// SinkError reports a failure to write the output dataset.
type SinkError struct {
	Path string
	Err  error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *SinkError) Unwrap() error { return e.Err }
