package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/presrag"
)

// Document page selectors.
const (
	contentSelector = ".field-docs-content"
	dateSelector    = ".date-display-single"
)

// Ensure DocumentExtractor implements presrag.DocumentExtractor at compile time.
var _ presrag.DocumentExtractor = (*DocumentExtractor)(nil)

// DocumentExtractor parses individual document pages.
type DocumentExtractor struct{}

// NewDocumentExtractor creates a new DocumentExtractor.
func NewDocumentExtractor() *DocumentExtractor {
	return &DocumentExtractor{}
}

// WaitSelector returns the selector indicating the document has rendered.
func (e *DocumentExtractor) WaitSelector() string {
	return contentSelector
}

// ExtractDocument returns the raw date string and body text. A missing date
// element yields the NoDate sentinel; a missing body element yields an
// empty string so callers can apply a fallback extractor.
func (e *DocumentExtractor) ExtractDocument(html string) (string, string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", "", presrag.Errorf(presrag.EINVALID, "failed to parse HTML: %v", err)
	}

	date := presrag.NoDate
	if sel := doc.Find(dateSelector).First(); sel.Length() > 0 {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			date = text
		}
	}

	body := strings.TrimSpace(doc.Find(contentSelector).First().Text())

	return date, body, nil
}
