package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/assessrec"
)

// Ensure LoggingCatalogSource implements assessrec.CatalogSource.
var _ assessrec.CatalogSource = (*LoggingCatalogSource)(nil)

// LoggingCatalogSource wraps a CatalogSource with scrape logging.
type LoggingCatalogSource struct {
	next   assessrec.CatalogSource
	logger *slog.Logger
}

// NewLoggingCatalogSource creates a new LoggingCatalogSource.
func NewLoggingCatalogSource(next assessrec.CatalogSource, logger *slog.Logger) *LoggingCatalogSource {
	return &LoggingCatalogSource{next: next, logger: logger}
}

// Catalog delegates to the wrapped source and logs the outcome.
func (s *LoggingCatalogSource) Catalog(ctx context.Context) ([]assessrec.Assessment, error) {
	begin := time.Now()
	catalog, err := s.next.Catalog(ctx)
	if err != nil {
		s.logger.Error("catalog scrape failed",
			"error", err,
			"duration", time.Since(begin),
		)
		return nil, err
	}
	s.logger.Info("catalog scrape",
		"entries", len(catalog),
		"duration", time.Since(begin),
	)
	return catalog, nil
}
