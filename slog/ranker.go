package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/assessrec"
)

// Ensure LoggingRanker implements assessrec.Ranker.
var _ assessrec.Ranker = (*LoggingRanker)(nil)

// LoggingRanker wraps a Ranker with ranking logging.
type LoggingRanker struct {
	next   assessrec.Ranker
	logger *slog.Logger
}

// NewLoggingRanker creates a new LoggingRanker.
func NewLoggingRanker(next assessrec.Ranker, logger *slog.Logger) *LoggingRanker {
	return &LoggingRanker{next: next, logger: logger}
}

// Rank delegates to the wrapped ranker and logs the outcome.
func (r *LoggingRanker) Rank(query string, catalog []assessrec.Assessment, topN int) []assessrec.Recommendation {
	begin := time.Now()
	recs := r.next.Rank(query, catalog, topN)
	r.logger.Info("rank",
		"query_chars", len(query),
		"catalog", len(catalog),
		"results", len(recs),
		"duration", time.Since(begin),
	)
	return recs
}
