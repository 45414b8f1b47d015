package mock

import "github.com/fwojciec/presrag"

var _ presrag.ListingExtractor = (*ListingExtractor)(nil)

// ListingExtractor is a mock implementation of presrag.ListingExtractor.
type ListingExtractor struct {
	ExtractListingFn func(html, baseURL string) ([]presrag.DocLink, string, error)
	WaitSelectorFn   func() string
}

func (e *ListingExtractor) ExtractListing(html, baseURL string) ([]presrag.DocLink, string, error) {
	return e.ExtractListingFn(html, baseURL)
}

func (e *ListingExtractor) WaitSelector() string {
	if e.WaitSelectorFn == nil {
		return ""
	}
	return e.WaitSelectorFn()
}
