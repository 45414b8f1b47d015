package mock

import (
	"context"

	"github.com/fwojciec/presrag"
)

var _ presrag.Answerer = (*Answerer)(nil)

// Answerer is a mock implementation of presrag.Answerer.
type Answerer struct {
	AnswerFn func(ctx context.Context, question string) (string, error)
}

func (a *Answerer) Answer(ctx context.Context, question string) (string, error) {
	return a.AnswerFn(ctx, question)
}
