package mdtable

import (
	"fmt"

	"github.com/alnah/go-mdtable/internal/pipeline"
)

// ErrMalformedMarkup indicates a located table could not be rendered.
// Convert still returns usable passthrough values alongside it.
var ErrMalformedMarkup = pipeline.ErrMalformedMarkup

// RowError records why one row of a column fell back to passthrough values.
type RowError struct {
	Row int // zero-based index into the input column
	Err error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}
