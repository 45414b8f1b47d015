package presrag

import (
	"context"
	"strings"
	"time"
)

// Sentinel values substituted when page data cannot be obtained. They
// signal "unknown" without aborting the scrape of a document.
const (
	NoDate         = "NO_DATE"
	NoDateISO      = "0000-00-00"
	NoContentFound = "NO CONTENT FOUND"
)

// maxFilenameLen bounds the sanitized title portion of output filenames.
const maxFilenameLen = 240

// ScrapedDocument represents a single document extracted from the archive.
// It is written to disk exactly once and never updated.
type ScrapedDocument struct {
	// Title is the document title as shown on the listing page.
	Title string

	// Date is the raw date string from the document page, or NoDate.
	Date string

	// ISODate is the date normalized to ISO-8601, or NoDateISO when the
	// raw date could not be parsed.
	ISODate string

	// URL is the document page address.
	URL string

	// Body is the document's main text, or NoContentFound.
	Body string
}

// Filename returns the deterministic output filename for the document:
// "{ISO-date}_{sanitized title}.txt".
func (d *ScrapedDocument) Filename() string {
	date := d.ISODate
	if date == "" {
		date = NoDateISO
	}
	return date + "_" + SanitizeFilename(d.Title) + ".txt"
}

// DocLink represents a link to a document found on a listing page.
type DocLink struct {
	URL   string
	Title string
}

// ListingExtractor parses a listing page into document links and the
// next-page address.
type ListingExtractor interface {
	// ExtractListing returns the document links on the page in document
	// order and the resolved next-page URL, or "" when no next-page
	// control exists. The baseURL resolves relative hrefs.
	ExtractListing(html, baseURL string) (links []DocLink, next string, err error)

	// WaitSelector returns the CSS selector whose presence indicates the
	// listing has rendered.
	WaitSelector() string
}

// DocumentExtractor parses a document page into its date and body text.
type DocumentExtractor interface {
	// ExtractDocument returns the raw date string and body text. A missing
	// date element yields the NoDate sentinel; a missing body element
	// yields an empty string so callers can apply a fallback extractor
	// before substituting NoContentFound.
	ExtractDocument(html string) (date, body string, err error)

	// WaitSelector returns the CSS selector whose presence indicates the
	// document has rendered.
	WaitSelector() string
}

// SeenFilter tracks document URLs so repeated listings are not re-scraped
// within a run. Implementations may be probabilistic: false positives skip
// a document, false negatives are not allowed.
type SeenFilter interface {
	Add(url string)
	Test(url string) bool
}

// BodyExtractor extracts main content from arbitrary HTML, removing
// boilerplate. Used as a fallback when the known page structure is absent.
type BodyExtractor interface {
	ExtractBody(html string) (string, error)
}

// ScrapedDocumentWriter persists scraped documents.
type ScrapedDocumentWriter interface {
	// Write stores the document and returns the filename it was written
	// under.
	Write(ctx context.Context, doc *ScrapedDocument) (string, error)
}

// ScrapeEntry records a scraped document in the manifest.
type ScrapeEntry struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Date        string    `json:"date"`
	Filename    string    `json:"filename"`
	ContentHash string    `json:"contentHash"`
	ScrapedAt   time.Time `json:"scrapedAt"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *ScrapeEntry) Validate() error {
	if e.URL == "" {
		return Errorf(EINVALID, "scrape entry URL required")
	}
	if e.Filename == "" {
		return Errorf(EINVALID, "scrape entry filename required")
	}
	return nil
}

// ScrapeStore persists the manifest of scraped documents so repeated runs
// can skip work already done.
type ScrapeStore interface {
	// Record inserts a manifest entry.
	Record(ctx context.Context, entry *ScrapeEntry) error

	// Seen reports whether a document URL has already been recorded.
	Seen(ctx context.Context, url string) (bool, error)

	// FindEntries retrieves manifest entries matching the filter, most
	// recent first.
	FindEntries(ctx context.Context, filter ScrapeEntryFilter) ([]*ScrapeEntry, error)
}

// ScrapeEntryFilter represents a filter for FindEntries.
type ScrapeEntryFilter struct {
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ConvertDate normalizes a "January 2, 2006" style date to ISO-8601.
// Unparsable input returns the NoDateISO sentinel rather than an error.
func ConvertDate(date string) string {
	t, err := time.Parse("January 2, 2006", strings.TrimSpace(date))
	if err != nil {
		return NoDateISO
	}
	return t.Format("2006-01-02")
}

// SanitizeFilename makes a title safe to use as a filename: reserved
// filesystem characters become underscores, newlines become spaces, and the
// result is truncated to 240 runes. Sanitizing is idempotent.
func SanitizeFilename(name string) string {
	var sb strings.Builder
	sb.Grow(len(name))
	for _, r := range name {
		switch r {
		case '<', '>', ':', '"', '/', '\\', '|', '?', '*':
			sb.WriteRune('_')
		case '\n', '\r':
			sb.WriteRune(' ')
		default:
			sb.WriteRune(r)
		}
	}
	runes := []rune(sb.String())
	if len(runes) > maxFilenameLen {
		runes = runes[:maxFilenameLen]
	}
	return string(runes)
}
