package mock

import (
	"context"

	"github.com/fwojciec/presrag"
)

var _ presrag.Embedder = (*Embedder)(nil)

// Embedder is a mock implementation of presrag.Embedder.
type Embedder struct {
	EmbedFn func(ctx context.Context, text string) ([]float32, error)
}

func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return e.EmbedFn(ctx, text)
}
