// Package http provides the HTTP implementations of leadscan.Fetcher and
// leadscan.SiteDiscoverer. Pages are fetched as served, without JavaScript
// rendering.
package http

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/net/html/charset"

	"github.com/konverta/leadscan"
)

// DefaultFetchTimeout is the default timeout for a single page fetch.
const DefaultFetchTimeout = 30 * time.Second

// MaxPageSize caps the raw response body at 5,000,000 bytes. Marketing
// pages beyond this are almost always asset dumps, not content worth
// analyzing.
const MaxPageSize = 5_000_000

// defaultUserAgent mimics a desktop browser; several Swedish marketing
// sites serve bot-flagged agents a stripped page.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Ensure Fetcher implements leadscan.Fetcher at compile time.
var _ leadscan.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves marketing pages over HTTP. Redirects are followed and
// the final URL is recorded on the returned Page. TLS verification is
// relaxed: an expired certificate is itself a finding, not a reason to
// skip the analysis.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	now       func() time.Time
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for page fetches.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: defaultUserAgent,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
	}

	return f
}

// Fetch retrieves the page at url. It fails with an EUNAVAILABLE error on
// network failure, non-2xx status, or an oversized body; fetches are single
// attempts and are never retried here.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*leadscan.Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, leadscan.Errorf(leadscan.EINVALID, "invalid url %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "sv-SE,sv;q=0.9,en;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, leadscan.Errorf(leadscan.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, leadscan.Errorf(leadscan.EUNAVAILABLE, "fetch %s: HTTP %d", url, resp.StatusCode)
	}

	// The size cap applies to the bytes on the wire, before any charset
	// expansion.
	raw, err := io.ReadAll(io.LimitReader(resp.Body, MaxPageSize+1))
	if err != nil {
		return nil, leadscan.Errorf(leadscan.EUNAVAILABLE, "fetch %s: read body: %v", url, err)
	}
	if len(raw) > MaxPageSize {
		return nil, leadscan.Errorf(leadscan.EUNAVAILABLE, "fetch %s: page exceeds %d bytes", url, MaxPageSize)
	}

	// Decode to UTF-8; older Swedish sites still serve ISO-8859-1.
	reader, err := charset.NewReader(bytes.NewReader(raw), resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, leadscan.Errorf(leadscan.EUNAVAILABLE, "fetch %s: decode charset: %v", url, err)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, leadscan.Errorf(leadscan.EUNAVAILABLE, "fetch %s: decode body: %v", url, err)
	}

	finalURL := url
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return &leadscan.Page{
		URL:         finalURL,
		HTML:        string(body),
		ContentHash: fmt.Sprintf("%016x", xxhash.Sum64(body)),
		FetchedAt:   f.now().UTC(),
	}, nil
}

// Close releases resources. A no-op for the HTTP fetcher.
func (f *Fetcher) Close() error {
	return nil
}
