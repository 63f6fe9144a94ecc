package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/konverta/leadscan"
	leadscanhttp "github.com/konverta/leadscan/http"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns page with content hash and final url", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte("<html><body><h1>Välkommen</h1></body></html>"))
		}))
		defer srv.Close()

		f := leadscanhttp.NewFetcher()
		page, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)

		assert.Equal(t, srv.URL, page.URL)
		assert.Contains(t, page.HTML, "Välkommen")
		assert.Len(t, page.ContentHash, 16)
		assert.False(t, page.FetchedAt.IsZero())
	})

	t.Run("follows redirects and records final url", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/start", http.StatusMovedPermanently)
		})
		mux.HandleFunc("/start", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html><body>landed</body></html>"))
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		f := leadscanhttp.NewFetcher()
		page, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)

		assert.Equal(t, srv.URL+"/start", page.URL)
		assert.Contains(t, page.HTML, "landed")
	})

	t.Run("sends browser headers", func(t *testing.T) {
		t.Parallel()

		var gotUA, gotLang string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			gotLang = r.Header.Get("Accept-Language")
			_, _ = w.Write([]byte("<html></html>"))
		}))
		defer srv.Close()

		f := leadscanhttp.NewFetcher(leadscanhttp.WithUserAgent("leadscan-test"))
		_, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)

		assert.Equal(t, "leadscan-test", gotUA)
		assert.Contains(t, gotLang, "sv-SE")
	})

	t.Run("non-2xx status is unavailable", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "not found", http.StatusNotFound)
		}))
		defer srv.Close()

		f := leadscanhttp.NewFetcher()
		_, err := f.Fetch(context.Background(), srv.URL)
		require.Error(t, err)
		assert.Equal(t, leadscan.EUNAVAILABLE, leadscan.ErrorCode(err))
	})

	t.Run("body at the size cap is accepted", func(t *testing.T) {
		t.Parallel()

		page := "<html>" + strings.Repeat("a", leadscanhttp.MaxPageSize-13) + "</html>"
		require.Len(t, page, leadscanhttp.MaxPageSize)

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(page))
		}))
		defer srv.Close()

		f := leadscanhttp.NewFetcher()
		got, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Len(t, got.HTML, leadscanhttp.MaxPageSize)
	})

	t.Run("oversized body is unavailable", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>"))
			_, _ = w.Write([]byte(strings.Repeat("a", leadscanhttp.MaxPageSize)))
		}))
		defer srv.Close()

		f := leadscanhttp.NewFetcher()
		_, err := f.Fetch(context.Background(), srv.URL)
		require.Error(t, err)
		assert.Equal(t, leadscan.EUNAVAILABLE, leadscan.ErrorCode(err))
	})

	t.Run("identical content yields identical hash", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html><body>stable</body></html>"))
		}))
		defer srv.Close()

		f := leadscanhttp.NewFetcher()
		first, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		second, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)

		assert.Equal(t, first.ContentHash, second.ContentHash)
	})

	t.Run("unreachable server is unavailable", func(t *testing.T) {
		t.Parallel()

		f := leadscanhttp.NewFetcher()
		_, err := f.Fetch(context.Background(), "http://127.0.0.1:1/")
		require.Error(t, err)
		assert.Equal(t, leadscan.EUNAVAILABLE, leadscan.ErrorCode(err))
	})
}
