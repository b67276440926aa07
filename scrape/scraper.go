// Package scrape builds the assessment catalog by fetching and parsing
// the configured catalog source pages.
package scrape

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/assessrec"
	"github.com/fwojciec/assessrec/bloom"
	"golang.org/x/sync/errgroup"
)

// DefaultScrapeTimeout bounds one full catalog scrape.
const DefaultScrapeTimeout = 10 * time.Second

// DefaultConcurrency is the fetch parallelism across source pages.
const DefaultConcurrency = 4

// Ensure Scraper implements assessrec.CatalogSource at compile time.
var _ assessrec.CatalogSource = (*Scraper)(nil)

// Scraper produces a catalog from one or more source page URLs. The
// real catalog paginates, so sources are a list; a single URL is the
// common case.
type Scraper struct {
	Fetcher assessrec.Fetcher
	Parser  assessrec.CatalogParser

	// Limiter, when set, gates fetches per domain.
	Limiter *Limiter

	// URLs are the catalog source pages, in presentation order.
	URLs []string

	// Concurrency bounds parallel fetches. Zero means DefaultConcurrency.
	Concurrency int

	// Timeout bounds the whole scrape. Zero means DefaultScrapeTimeout.
	Timeout time.Duration
}

// Catalog implements assessrec.CatalogSource. It fetches every source
// page, parses entries, and merges them in source order. Byte-identical
// pages are parsed once (paginated catalogs sometimes repeat the final
// page) and entry URLs are deduplicated across pages. The catalog is
// rebuilt from the network on every call; nothing is cached.
//
// A source that fails to fetch or parse is skipped; only when every
// source fails does Catalog return an error. An empty catalog from
// reachable pages is a valid degenerate result.
func (s *Scraper) Catalog(ctx context.Context) ([]assessrec.Assessment, error) {
	if len(s.URLs) == 0 {
		return nil, assessrec.Errorf(assessrec.EINVALID, "no catalog source URLs configured")
	}

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultScrapeTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	pages := make([]string, len(s.URLs))
	errs := make([]error, len(s.URLs))

	var mu sync.Mutex
	seenPages := make(map[uint64]bool)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency())
	for i, target := range s.URLs {
		i, target := i, target
		g.Go(func() error {
			if err := s.wait(gctx, target); err != nil {
				errs[i] = err
				return nil
			}
			html, err := s.Fetcher.Fetch(gctx, target)
			if err != nil {
				errs[i] = err
				return nil
			}

			hash := xxhash.Sum64String(html)
			mu.Lock()
			dup := seenPages[hash]
			seenPages[hash] = true
			mu.Unlock()
			if dup {
				return nil
			}

			pages[i] = html
			return nil
		})
	}
	_ = g.Wait() // goroutines report per-source errors via errs

	filter := bloom.NewFilter(0, 0.0001)
	var catalog []assessrec.Assessment
	for i, page := range pages {
		if page == "" {
			continue
		}
		entries, err := s.Parser.ParseCatalog(page, s.URLs[i])
		if err != nil {
			errs[i] = err
			continue
		}
		for _, entry := range entries {
			if filter.Seen(entry.URL) {
				continue
			}
			filter.Add(entry.URL)
			catalog = append(catalog, entry)
		}
	}

	if len(catalog) == 0 {
		if err := firstErrorIfAllFailed(errs); err != nil {
			return nil, assessrec.Errorf(assessrec.EUNAVAILABLE, "fetching catalog: %v", err)
		}
	}
	return catalog, nil
}

func (s *Scraper) concurrency() int {
	if s.Concurrency > 0 {
		return s.Concurrency
	}
	return DefaultConcurrency
}

func (s *Scraper) wait(ctx context.Context, target string) error {
	if s.Limiter == nil {
		return nil
	}
	u, err := url.Parse(target)
	if err != nil {
		return err
	}
	return s.Limiter.Wait(ctx, u.Host)
}

// firstErrorIfAllFailed returns the first error when every source
// failed, nil otherwise. Partial failures degrade to a smaller catalog
// rather than an error.
func firstErrorIfAllFailed(errs []error) error {
	var first error
	for _, err := range errs {
		if err == nil {
			return nil
		}
		if first == nil {
			first = err
		}
	}
	return first
}
