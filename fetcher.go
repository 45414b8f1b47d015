package presrag

import "context"

// Fetcher retrieves rendered HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered
// content.
type Fetcher interface {
	// Fetch navigates to the URL, optionally waits for an element matching
	// waitSelector to appear, and returns the rendered HTML. An empty
	// selector waits only for the page load event.
	//
	// The context controls timeout and cancellation; a wait that exceeds
	// the deadline returns an ETIMEOUT error.
	Fetch(ctx context.Context, url, waitSelector string) (html string, err error)

	// Close releases browser resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
