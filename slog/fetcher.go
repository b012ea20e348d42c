// Package slog provides logging decorators for gapscan services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/gapscan"
)

// Ensure LoggingFetcher implements gapscan.Fetcher.
var _ gapscan.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with structured request logging.
type LoggingFetcher struct {
	next   gapscan.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next gapscan.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher, logging outcome and duration.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (*gapscan.FetchResult, error) {
	begin := time.Now()
	res, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Warn("fetch failed",
			"url", url,
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	f.logger.Info("fetch",
		"url", url,
		"final_url", res.FinalURL,
		"status", res.StatusCode,
		"bytes", len(res.HTML),
		"duration", time.Since(begin),
	)
	return res, nil
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
