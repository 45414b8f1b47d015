package mock

import (
	"context"

	"github.com/fwojciec/presrag"
)

var _ presrag.ScrapeStore = (*ScrapeStore)(nil)

// ScrapeStore is a mock implementation of presrag.ScrapeStore.
type ScrapeStore struct {
	RecordFn      func(ctx context.Context, entry *presrag.ScrapeEntry) error
	SeenFn        func(ctx context.Context, url string) (bool, error)
	FindEntriesFn func(ctx context.Context, filter presrag.ScrapeEntryFilter) ([]*presrag.ScrapeEntry, error)
}

func (s *ScrapeStore) Record(ctx context.Context, entry *presrag.ScrapeEntry) error {
	return s.RecordFn(ctx, entry)
}

func (s *ScrapeStore) Seen(ctx context.Context, url string) (bool, error) {
	return s.SeenFn(ctx, url)
}

func (s *ScrapeStore) FindEntries(ctx context.Context, filter presrag.ScrapeEntryFilter) ([]*presrag.ScrapeEntry, error) {
	return s.FindEntriesFn(ctx, filter)
}
