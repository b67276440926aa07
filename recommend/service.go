// Package recommend wires the scraping, extraction, and ranking stages
// into the recommendation pipeline.
package recommend

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/assessrec"
)

// DefaultExtractTimeout bounds the fetch of a user-supplied URL during
// query extraction. It is deliberately shorter than the catalog scrape
// budget: a slow arbitrary page should fail closed quickly.
const DefaultExtractTimeout = 5 * time.Second

// Service runs the recommendation pipeline: scrape a fresh catalog,
// derive a query (typed directly or extracted from a URL), and rank.
// All collaborators are injected; Service holds no state between
// interactions.
type Service struct {
	Catalog assessrec.CatalogSource
	Fetcher assessrec.Fetcher
	Ranker  assessrec.Ranker

	// Extractors are the query text strategies, tried in order until
	// one yields non-empty text.
	Extractors []assessrec.TextExtractor

	// TopN limits the number of recommendations. Zero means
	// assessrec.DefaultTopN.
	TopN int

	// ExtractTimeout bounds QueryFromURL's fetch. Zero means
	// DefaultExtractTimeout.
	ExtractTimeout time.Duration
}

// QueryFromURL fetches the page at target and derives query text from
// it. An unreachable or non-HTML page returns an error the caller
// should present as "awaiting input", not as a failure; a reachable
// page with no extractable text yields an empty string.
func (s *Service) QueryFromURL(ctx context.Context, target string) (string, error) {
	if strings.TrimSpace(target) == "" {
		return "", assessrec.Errorf(assessrec.EINVALID, "URL required")
	}

	timeout := s.ExtractTimeout
	if timeout <= 0 {
		timeout = DefaultExtractTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	html, err := s.Fetcher.Fetch(ctx, target)
	if err != nil {
		return "", assessrec.Errorf(assessrec.EUNAVAILABLE, "extracting text from %s: %v", target, err)
	}

	for _, extractor := range s.Extractors {
		text, err := extractor.ExtractText(html)
		if err != nil {
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			return text, nil
		}
	}
	return "", nil
}

// Recommend scrapes a fresh catalog and ranks it against the query.
// The query must be non-empty; the UI short-circuits empty input
// before the ranker is ever invoked.
func (s *Service) Recommend(ctx context.Context, query string) ([]assessrec.Recommendation, error) {
	if strings.TrimSpace(query) == "" {
		return nil, assessrec.Errorf(assessrec.EINVALID, "query required")
	}

	catalog, err := s.Catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	return s.Ranker.Rank(query, catalog, s.TopN), nil
}
