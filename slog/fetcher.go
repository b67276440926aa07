// Package slog provides logging decorators for the pipeline
// interfaces. Each decorator wraps an inner implementation and records
// timing and outcome without changing behavior.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/assessrec"
)

// Ensure LoggingFetcher implements assessrec.Fetcher.
var _ assessrec.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with fetch logging.
type LoggingFetcher struct {
	next   assessrec.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next assessrec.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Error("fetch failed",
			"url", url,
			"error", err,
			"duration", time.Since(begin),
		)
		return "", err
	}
	f.logger.Info("fetch",
		"url", url,
		"bytes", len(html),
		"duration", time.Since(begin),
	)
	return html, nil
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
