// Package scrape provides archive scraping orchestration. It coordinates
// page fetching, listing pagination, document extraction, and storage of
// scraped documents.
package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/presrag"
)

// DefaultWaitTimeout bounds how long a fetch waits for a page's expected
// element to render.
const DefaultWaitTimeout = 10 * time.Second

// Scraper walks a paginated document archive and persists each document
// exactly once. Documents are processed sequentially in listing order.
type Scraper struct {
	Fetcher presrag.Fetcher
	Listing presrag.ListingExtractor
	Docs    presrag.DocumentExtractor

	// Fallback extracts body text when the expected page structure is
	// absent. Optional.
	Fallback presrag.BodyExtractor

	Writer presrag.ScrapedDocumentWriter

	// Store records scraped documents so later runs skip them. Optional.
	Store presrag.ScrapeStore

	// Seen short-circuits duplicate links within a run. Optional.
	Seen presrag.SeenFilter

	// Limiter spaces out requests per domain. Optional.
	Limiter presrag.DomainLimiter

	// WaitTimeout bounds each fetch's wait for the page's expected
	// element. Zero means DefaultWaitTimeout.
	WaitTimeout time.Duration

	// MaxPages stops pagination after this many listing pages. Zero means
	// no limit.
	MaxPages int

	Logger *slog.Logger
}

// Result holds the outcome of a scrape run.
type Result struct {
	Saved   int
	Skipped int
	Failed  int
	Pages   int
}

// Run scrapes the archive starting from a listing page URL. Individual
// document failures are counted and skipped; only listing-level failures
// and context cancellation abort the run.
func (s *Scraper) Run(ctx context.Context, startURL string) (*Result, error) {
	if s.Fetcher == nil || s.Listing == nil || s.Docs == nil || s.Writer == nil {
		return nil, presrag.Errorf(presrag.EINVALID, "fetcher, listing extractor, document extractor, and writer required")
	}

	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}

	result := &Result{}
	pageURL := startURL

	for pageURL != "" {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if s.MaxPages > 0 && result.Pages >= s.MaxPages {
			break
		}

		if err := s.wait(ctx, pageURL); err != nil {
			return result, err
		}

		html, err := s.fetch(ctx, pageURL, s.Listing.WaitSelector(), logger)
		if err != nil {
			return result, err
		}

		links, next, err := s.Listing.ExtractListing(html, pageURL)
		if err != nil {
			return result, err
		}

		result.Pages++
		logger.Info("listing page scraped", "url", pageURL, "links", len(links))

		for _, link := range links {
			if err := ctx.Err(); err != nil {
				return result, err
			}

			skip, err := s.alreadySeen(ctx, link.URL)
			if err != nil {
				return result, err
			}
			if skip {
				result.Skipped++
				continue
			}

			if err := s.wait(ctx, link.URL); err != nil {
				return result, err
			}

			if err := s.scrapeDocument(ctx, link, logger); err != nil {
				if ctx.Err() != nil {
					return result, err
				}
				result.Failed++
				logger.Warn("document scrape failed", "url", link.URL, "error", err)
				continue
			}

			if s.Seen != nil {
				s.Seen.Add(link.URL)
			}
			result.Saved++
		}

		pageURL = next
	}

	logger.Info("scrape finished",
		"saved", result.Saved,
		"skipped", result.Skipped,
		"failed", result.Failed,
		"pages", result.Pages)

	return result, nil
}

// scrapeDocument fetches a single document page, extracts its contents,
// writes it to storage, and records it in the manifest.
func (s *Scraper) scrapeDocument(ctx context.Context, link presrag.DocLink, logger *slog.Logger) error {
	html, err := s.fetch(ctx, link.URL, s.Docs.WaitSelector(), logger)
	if err != nil {
		return err
	}

	date, body, err := s.Docs.ExtractDocument(html)
	if err != nil {
		return err
	}

	if body == "" && s.Fallback != nil {
		extracted, err := s.Fallback.ExtractBody(html)
		if err != nil {
			logger.Warn("fallback extraction failed", "url", link.URL, "error", err)
		} else {
			body = extracted
		}
	}
	if body == "" {
		body = presrag.NoContentFound
	}

	doc := &presrag.ScrapedDocument{
		Title:   link.Title,
		Date:    date,
		ISODate: presrag.ConvertDate(date),
		URL:     link.URL,
		Body:    body,
	}

	filename, err := s.Writer.Write(ctx, doc)
	if err != nil {
		return err
	}

	logger.Info("document scraped", "url", link.URL, "filename", filename)

	if s.Store != nil {
		entry := &presrag.ScrapeEntry{
			URL:         link.URL,
			Title:       link.Title,
			Date:        doc.ISODate,
			Filename:    filename,
			ContentHash: computeHash(body),
		}
		if err := s.Store.Record(ctx, entry); err != nil {
			logger.Warn("manifest record failed", "url", link.URL, "error", err)
		}
	}

	return nil
}

// fetch retrieves a page, waiting for its expected element. When the wait
// times out the page is fetched once more without the wait so that partial
// pages can still be parsed.
func (s *Scraper) fetch(ctx context.Context, pageURL, waitSelector string, logger *slog.Logger) (string, error) {
	timeout := s.WaitTimeout
	if timeout <= 0 {
		timeout = DefaultWaitTimeout
	}

	fctx, cancel := context.WithTimeout(ctx, timeout)
	html, err := s.Fetcher.Fetch(fctx, pageURL, waitSelector)
	cancel()
	if err == nil {
		return html, nil
	}
	if presrag.ErrorCode(err) != presrag.ETIMEOUT || ctx.Err() != nil {
		return "", err
	}

	logger.Warn("wait for element timed out, refetching without wait", "url", pageURL, "selector", waitSelector)

	fctx, cancel = context.WithTimeout(ctx, timeout)
	defer cancel()
	return s.Fetcher.Fetch(fctx, pageURL, "")
}

// alreadySeen reports whether the URL was handled in this run or recorded
// by a previous one.
func (s *Scraper) alreadySeen(ctx context.Context, pageURL string) (bool, error) {
	if s.Seen != nil && s.Seen.Test(pageURL) {
		return true, nil
	}
	if s.Store == nil {
		return false, nil
	}

	seen, err := s.Store.Seen(ctx, pageURL)
	if err != nil {
		return false, err
	}
	if seen && s.Seen != nil {
		s.Seen.Add(pageURL)
	}
	return seen, nil
}

// wait applies the per-domain rate limit for a URL.
func (s *Scraper) wait(ctx context.Context, pageURL string) error {
	if s.Limiter == nil {
		return nil
	}

	u, err := url.Parse(pageURL)
	if err != nil {
		return presrag.Errorf(presrag.EINVALID, "invalid URL %q", pageURL)
	}
	return s.Limiter.Wait(ctx, u.Hostname())
}

// computeHash computes a hash of the content using xxhash.
func computeHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%x", h)
}
