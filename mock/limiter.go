package mock

import (
	"context"

	"github.com/fwojciec/presrag"
)

var _ presrag.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of presrag.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx, domain)
}
