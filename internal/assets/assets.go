package assets

import "errors"

// TableStyleName is the embedded stylesheet matching rendered tables.
const TableStyleName = "markdown-table"

var (
	// ErrStyleNotFound is returned for a well-formed name with no embedded file.
	ErrStyleNotFound = errors.New("style not found")

	// ErrInvalidAssetName is returned for names that are empty or hold path
	// separators, dots, or whitespace.
	ErrInvalidAssetName = errors.New("invalid asset name")
)

// AssetLoader returns the text of a named stylesheet.
// Names carry no extension.
type AssetLoader interface {
	LoadStyle(name string) (string, error)
}
