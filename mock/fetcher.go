// Package mock provides hand-written mock implementations of pagesum
// interfaces for tests.
package mock

import (
	"context"

	"github.com/hkwon/pagesum"
)

var _ pagesum.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of pagesum.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
