package leadscan

import (
	"context"
	"time"
)

// Page represents a fetched marketing page. URL holds the final resolved
// URL after redirects; relative links in the document are resolved against it.
type Page struct {
	URL         string    `json:"url"`
	HTML        string    `json:"-"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Fetcher retrieves raw HTML from URLs. A fetch is a single attempt: on
// network failure, timeout, non-2xx status, or an oversized body it fails
// with an EUNAVAILABLE error and is not retried.
type Fetcher interface {
	// Fetch retrieves the page at url, following redirects.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*Page, error)
}

// SiteDiscoverer finds candidate page URLs for a site, typically from its
// sitemap. Used for batch scans; single-URL analysis does not need it.
type SiteDiscoverer interface {
	// DiscoverPages returns up to limit page URLs for the site at baseURL.
	// Returns an empty slice (not nil) when no sitemap is found.
	DiscoverPages(ctx context.Context, baseURL string, limit int) ([]string, error)
}

// DomainLimiter provides per-domain rate limiting for batch scans.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
