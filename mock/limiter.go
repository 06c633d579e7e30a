package mock

import (
	"context"

	"github.com/hkwon/pagesum"
)

var _ pagesum.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of pagesum.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, url string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, url string) error {
	return l.WaitFn(ctx, url)
}
