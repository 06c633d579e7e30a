package pagesum

import "context"

// Fetcher retrieves decoded HTML from URLs.
// Implementations handle transport details such as timeouts and
// response character encoding.
type Fetcher interface {
	// Fetch performs a GET request and returns the response body
	// decoded to UTF-8. The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases transport resources.
	Close() error
}

// DomainLimiter provides per-domain request pacing.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the URL's
	// host. Returns an error if the context is canceled.
	Wait(ctx context.Context, url string) error
}
