// Package readability extracts main content from HTML using go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/presrag"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements presrag.BodyExtractor at compile time.
var _ presrag.BodyExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractBody processes raw HTML and returns the main text content.
func (e *Extractor) ExtractBody(rawHTML string) (string, error) {
	if rawHTML == "" {
		return "", presrag.Errorf(presrag.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(article.TextContent), nil
}
