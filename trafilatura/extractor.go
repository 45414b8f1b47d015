// Package trafilatura provides generic main-content extraction from HTML.
// It serves as a fallback when a page does not carry the archive's known
// markup.
package trafilatura

import (
	"errors"
	"strings"

	"github.com/fwojciec/presrag"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements presrag.BodyExtractor at compile time.
var _ presrag.BodyExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML,
// removing boilerplate.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractBody returns the main text content of an HTML page.
func (e *Extractor) ExtractBody(rawHTML string) (string, error) {
	if rawHTML == "" {
		return "", errors.New("empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result.ContentText), nil
}
