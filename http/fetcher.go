// Package http provides the HTTP implementation of pagesum.Fetcher.
// It performs plain GET requests with a custom User-Agent and decodes
// response bodies to UTF-8 based on the Content-Type charset parameter.
package http

import (
	"context"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/hkwon/pagesum"
	"golang.org/x/text/encoding/htmlindex"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 12 * time.Second

// DefaultUserAgent identifies the tool to origin servers.
const DefaultUserAgent = "pagesum/0.1 (+https://github.com/hkwon/pagesum)"

// Ensure Fetcher implements pagesum.Fetcher at compile time.
var _ pagesum.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs over plain HTTP. It does
// not execute JavaScript and is suitable for static pages only.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (12s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the content from the given URL, decoded to UTF-8.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", pagesum.Errorf(pagesum.EINTERNAL, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return decode(body, charsetOf(resp.Header.Get("Content-Type"))), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// charsetOf returns the charset parameter of a Content-Type header,
// or empty when absent or unparseable.
func charsetOf(contentType string) string {
	if contentType == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return params["charset"]
}

// decode converts body to UTF-8 using the named charset, defaulting to
// UTF-8. Undecodable bytes are dropped, never an error: an unknown
// charset or a failing decoder falls back to keeping the valid UTF-8
// subsequence of the raw bytes.
func decode(body []byte, charset string) string {
	cs := strings.ToLower(strings.TrimSpace(charset))
	if cs == "" || cs == "utf-8" || cs == "utf8" {
		return sanitize(string(body))
	}

	enc, err := htmlindex.Get(cs)
	if err != nil || enc == nil {
		return sanitize(string(body))
	}
	decoded, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return sanitize(string(body))
	}
	return sanitize(string(decoded))
}

// sanitize drops invalid UTF-8 sequences and decoder replacement runes.
func sanitize(s string) string {
	s = strings.ToValidUTF8(s, "")
	return strings.ReplaceAll(s, "�", "")
}
