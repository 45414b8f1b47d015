package mock

import (
	"context"

	"github.com/fwojciec/presrag"
)

var _ presrag.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of presrag.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url, waitSelector string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url, waitSelector string) (string, error) {
	return f.FetchFn(ctx, url, waitSelector)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
