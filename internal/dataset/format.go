package dataset

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies a file format by extension.
type Format int

// Supported formats.
const (
	FormatUnknown Format = iota
	FormatXLSX
	FormatXLSM
	FormatCSV
	FormatTSV
)

var formatsByExt = map[string]Format{
	".xlsx": FormatXLSX,
	".xlsm": FormatXLSM,
	".csv":  FormatCSV,
	".tsv":  FormatTSV,
}

// FormatFor returns the format for path based on its extension.
func FormatFor(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := formatsByExt[ext]; ok {
		return f, nil
	}
	if ext == "" {
		return FormatUnknown, fmt.Errorf("%w: %q has no extension", ErrUnsupportedFormat, path)
	}
	return FormatUnknown, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

// Writable reports whether Save can produce this format.
// Macro-enabled workbooks are read but never written.
func (f Format) Writable() bool {
	return f == FormatXLSX || f == FormatCSV || f == FormatTSV
}

func (f Format) String() string {
	switch f {
	case FormatXLSX:
		return "xlsx"
	case FormatXLSM:
		return "xlsm"
	case FormatCSV:
		return "csv"
	case FormatTSV:
		return "tsv"
	default:
		return "unknown"
	}
}

// ReadableExtensions lists extensions Load accepts.
func ReadableExtensions() []string {
	return []string{".xlsx", ".xlsm", ".csv", ".tsv"}
}

// WritableExtensions lists extensions Save accepts.
func WritableExtensions() []string {
	return []string{".xlsx", ".csv", ".tsv"}
}
