package mock

import (
	"context"

	"github.com/fwojciec/presrag"
)

var _ presrag.VectorIndex = (*VectorIndex)(nil)

// VectorIndex is a mock implementation of presrag.VectorIndex.
type VectorIndex struct {
	AddFn    func(ctx context.Context, chunk presrag.Chunk, vector []float32) error
	SearchFn func(ctx context.Context, vector []float32, k int) ([]presrag.RetrievalResult, error)
}

func (i *VectorIndex) Add(ctx context.Context, chunk presrag.Chunk, vector []float32) error {
	return i.AddFn(ctx, chunk, vector)
}

func (i *VectorIndex) Search(ctx context.Context, vector []float32, k int) ([]presrag.RetrievalResult, error) {
	return i.SearchFn(ctx, vector, k)
}
