// Package goquery provides CSS-selector based extraction from archive pages.
// The selectors target the markup used by the presidency document archive:
// listing pages expose document links under .views-field-title, document
// pages carry their body in .field-docs-content.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/presrag"
)

// Archive page selectors.
const (
	listingLinkSelector = ".views-field-title a"
	nextPageSelector    = `a[title="Go to next page"]`
)

// Ensure ListingExtractor implements presrag.ListingExtractor at compile time.
var _ presrag.ListingExtractor = (*ListingExtractor)(nil)

// ListingExtractor parses document-listing pages.
type ListingExtractor struct{}

// NewListingExtractor creates a new ListingExtractor.
func NewListingExtractor() *ListingExtractor {
	return &ListingExtractor{}
}

// WaitSelector returns the selector indicating the listing has rendered.
func (e *ListingExtractor) WaitSelector() string {
	return listingLinkSelector
}

// ExtractListing returns the document links on the page in document order
// and the resolved next-page URL ("" when there is no next page).
// Links are deduplicated by URL; relative hrefs are resolved against baseURL.
func (e *ListingExtractor) ExtractListing(html, baseURL string) ([]presrag.DocLink, string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, "", presrag.Errorf(presrag.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, "", presrag.Errorf(presrag.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var links []presrag.DocLink

	doc.Find(listingLinkSelector).Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" || seen[resolved] {
			return
		}
		seen[resolved] = true

		links = append(links, presrag.DocLink{
			URL:   resolved,
			Title: strings.TrimSpace(sel.Text()),
		})
	})

	var next string
	if href, exists := doc.Find(nextPageSelector).First().Attr("href"); exists && href != "" {
		next = resolveURL(base, href)
	}

	return links, next, nil
}

// resolveURL resolves an href against the base URL.
// Returns "" if the href cannot be parsed.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""
	return resolved.String()
}
