package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName checks that a style name is a bare identifier.
// Empty names, path separators, dots, whitespace and NUL are rejected so a
// name cannot reach outside styles/ or change the extension.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.\x00 \t\n") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
