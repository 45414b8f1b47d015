package mock

import (
	"context"

	"github.com/fwojciec/presrag"
)

var _ presrag.DocumentLoader = (*DocumentLoader)(nil)

// DocumentLoader is a mock implementation of presrag.DocumentLoader.
type DocumentLoader struct {
	LoadFn func(ctx context.Context, dir string) ([]*presrag.Document, error)
}

func (l *DocumentLoader) Load(ctx context.Context, dir string) ([]*presrag.Document, error) {
	return l.LoadFn(ctx, dir)
}
