package batch

import (
	"context"
	"net/url"
	"sync"

	"github.com/hkwon/pagesum"
	"golang.org/x/time/rate"
)

var _ pagesum.DomainLimiter = (*HostLimiter)(nil)

// HostLimiter paces requests per host using token buckets, so a URL
// list that hits one site repeatedly stays polite while mixed lists
// are not slowed down across hosts.
type HostLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	rps     float64
}

// NewHostLimiter creates a HostLimiter allowing rps requests per
// second per host, with no bursting.
func NewHostLimiter(rps float64) *HostLimiter {
	return &HostLimiter{
		buckets: make(map[string]*rate.Limiter),
		rps:     rps,
	}
}

// Wait blocks until the rate limit allows a request to the URL's host.
// An unparseable URL shares a single bucket under the empty host key.
func (l *HostLimiter) Wait(ctx context.Context, rawURL string) error {
	var host string
	if u, err := url.Parse(rawURL); err == nil {
		host = u.Host
	}

	l.mu.Lock()
	bucket, ok := l.buckets[host]
	if !ok {
		bucket = rate.NewLimiter(rate.Limit(l.rps), 1)
		l.buckets[host] = bucket
	}
	l.mu.Unlock()

	return bucket.Wait(ctx)
}
