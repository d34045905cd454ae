package pipeline

import (
	"fmt"
	"strings"
	"sync"

	"github.com/alnah/go-mdtable/internal/assets"
)

// stylesheet is loaded once; the embedded asset never changes at runtime.
var stylesheet = sync.OnceValue(func() string {
	css, err := LoadStylesheet(assets.NewEmbeddedLoader())
	if err != nil {
		// The style is compiled into the binary: failing here is a build defect.
		panic(err)
	}
	return css
})

// Stylesheet returns the <style> block matching tables produced by
// PostProcessTable. Every call returns the same string.
func Stylesheet() string {
	return stylesheet()
}

// LoadStylesheet reads the table style through loader and wraps it in a
// <style> element.
func LoadStylesheet(loader assets.AssetLoader) (string, error) {
	css, err := loader.LoadStyle(assets.TableStyleName)
	if err != nil {
		return "", fmt.Errorf("loading table stylesheet: %w", err)
	}
	return "<style>\n" + sanitizeCSS(css) + "</style>", nil
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
