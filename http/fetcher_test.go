package http_test

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hkwon/pagesum"
	pagesumhttp "github.com/hkwon/pagesum/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/korean"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns the response body", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write([]byte("<html><body><p>hello</p></body></html>"))
		}))
		defer srv.Close()

		f := pagesumhttp.NewFetcher()
		defer f.Close()

		body, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, "<html><body><p>hello</p></body></html>", body)
	})

	t.Run("sends the identifying user agent", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			gotUA = r.Header.Get("User-Agent")
		}))
		defer srv.Close()

		f := pagesumhttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, pagesumhttp.DefaultUserAgent, gotUA)
	})

	t.Run("custom user agent overrides the default", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			gotUA = r.Header.Get("User-Agent")
		}))
		defer srv.Close()

		f := pagesumhttp.NewFetcher(pagesumhttp.WithUserAgent("custom-bot/1.0"))
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, "custom-bot/1.0", gotUA)
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			nethttp.NotFound(w, r)
		}))
		defer srv.Close()

		f := pagesumhttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)
		require.Error(t, err)
		assert.Equal(t, pagesum.EINTERNAL, pagesum.ErrorCode(err))
		assert.Contains(t, pagesum.ErrorMessage(err), "HTTP 404")
	})

	t.Run("decodes euc-kr bodies to utf-8", func(t *testing.T) {
		t.Parallel()

		encoded, err := korean.EUCKR.NewEncoder().Bytes([]byte("<p>한글 문서</p>"))
		require.NoError(t, err)

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.Header().Set("Content-Type", "text/html; charset=euc-kr")
			w.Write(encoded)
		}))
		defer srv.Close()

		f := pagesumhttp.NewFetcher()
		defer f.Close()

		body, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, "<p>한글 문서</p>", body)
	})

	t.Run("unknown charset falls back to raw bytes", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.Header().Set("Content-Type", "text/html; charset=x-no-such-charset")
			w.Write([]byte("<p>plain ascii</p>"))
		}))
		defer srv.Close()

		f := pagesumhttp.NewFetcher()
		defer f.Close()

		body, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, "<p>plain ascii</p>", body)
	})

	t.Run("drops invalid utf-8 bytes instead of failing", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write([]byte("ok\xff\xfebytes"))
		}))
		defer srv.Close()

		f := pagesumhttp.NewFetcher()
		defer f.Close()

		body, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, "okbytes", body)
	})

	t.Run("slow responses time out", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			time.Sleep(500 * time.Millisecond)
		}))
		defer srv.Close()

		f := pagesumhttp.NewFetcher(pagesumhttp.WithTimeout(50 * time.Millisecond))
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)
		assert.Error(t, err)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			time.Sleep(500 * time.Millisecond)
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		f := pagesumhttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(ctx, srv.URL)
		assert.Error(t, err)
	})
}
