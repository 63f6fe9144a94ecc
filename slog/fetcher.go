package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/konverta/leadscan"
)

// Ensure LoggingFetcher implements leadscan.Fetcher.
var _ leadscan.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with request logging.
type LoggingFetcher struct {
	next   leadscan.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next leadscan.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (page *leadscan.Page, err error) {
	defer func(begin time.Time) {
		size := 0
		if page != nil {
			size = len(page.HTML)
		}
		f.logger.Info("page fetch",
			"url", url,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}
