package mock

import (
	"context"

	"github.com/fwojciec/presrag"
)

var _ presrag.Retriever = (*Retriever)(nil)

// Retriever is a mock implementation of presrag.Retriever.
type Retriever struct {
	RetrieveFn func(ctx context.Context, question string) (string, error)
}

func (r *Retriever) Retrieve(ctx context.Context, question string) (string, error) {
	return r.RetrieveFn(ctx, question)
}
