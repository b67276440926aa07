package scrape_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/fwojciec/assessrec"
	"github.com/fwojciec/assessrec/mock"
	"github.com/fwojciec/assessrec/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScraper_Catalog(t *testing.T) {
	t.Parallel()

	t.Run("merges entries from all sources in source order", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<page>" + url + "</page>", nil
			},
		}
		parser := &mock.CatalogParser{
			ParseCatalogFn: func(html, baseURL string) ([]assessrec.Assessment, error) {
				if baseURL == "https://example.com/catalog?page=1" {
					return []assessrec.Assessment{
						{Name: "A", URL: "https://example.com/a"},
						{Name: "B", URL: "https://example.com/b"},
					}, nil
				}
				return []assessrec.Assessment{
					{Name: "C", URL: "https://example.com/c"},
				}, nil
			},
		}

		scraper := &scrape.Scraper{
			Fetcher: fetcher,
			Parser:  parser,
			URLs: []string{
				"https://example.com/catalog?page=1",
				"https://example.com/catalog?page=2",
			},
		}

		catalog, err := scraper.Catalog(context.Background())

		require.NoError(t, err)
		require.Len(t, catalog, 3)
		assert.Equal(t, "A", catalog[0].Name)
		assert.Equal(t, "B", catalog[1].Name)
		assert.Equal(t, "C", catalog[2].Name)
	})

	t.Run("parses byte-identical pages only once", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<same page>", nil
			},
		}

		var mu sync.Mutex
		var calls int
		parser := &mock.CatalogParser{
			ParseCatalogFn: func(html, baseURL string) ([]assessrec.Assessment, error) {
				mu.Lock()
				calls++
				mu.Unlock()
				return []assessrec.Assessment{{Name: "A", URL: "https://example.com/a"}}, nil
			},
		}

		scraper := &scrape.Scraper{
			Fetcher: fetcher,
			Parser:  parser,
			URLs: []string{
				"https://example.com/catalog?page=1",
				"https://example.com/catalog?page=2",
			},
		}

		catalog, err := scraper.Catalog(context.Background())

		require.NoError(t, err)
		assert.Len(t, catalog, 1)
		assert.Equal(t, 1, calls)
	})

	t.Run("deduplicates entry URLs across pages", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<page>" + url + "</page>", nil
			},
		}
		parser := &mock.CatalogParser{
			ParseCatalogFn: func(html, baseURL string) ([]assessrec.Assessment, error) {
				return []assessrec.Assessment{
					{Name: "A", URL: "https://example.com/a"},
				}, nil
			},
		}

		scraper := &scrape.Scraper{
			Fetcher: fetcher,
			Parser:  parser,
			URLs: []string{
				"https://example.com/catalog?page=1",
				"https://example.com/catalog?page=2",
			},
		}

		catalog, err := scraper.Catalog(context.Background())

		require.NoError(t, err)
		assert.Len(t, catalog, 1)
	})

	t.Run("skips failed sources and keeps the rest", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				if url == "https://example.com/catalog?page=2" {
					return "", errors.New("connection refused")
				}
				return "<page one>", nil
			},
		}
		parser := &mock.CatalogParser{
			ParseCatalogFn: func(html, baseURL string) ([]assessrec.Assessment, error) {
				return []assessrec.Assessment{{Name: "A", URL: "https://example.com/a"}}, nil
			},
		}

		scraper := &scrape.Scraper{
			Fetcher: fetcher,
			Parser:  parser,
			URLs: []string{
				"https://example.com/catalog?page=1",
				"https://example.com/catalog?page=2",
			},
		}

		catalog, err := scraper.Catalog(context.Background())

		require.NoError(t, err)
		assert.Len(t, catalog, 1)
	})

	t.Run("fails when every source fails", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("connection refused")
			},
		}
		parser := &mock.CatalogParser{
			ParseCatalogFn: func(html, baseURL string) ([]assessrec.Assessment, error) {
				t.Fatal("parser should not be called")
				return nil, nil
			},
		}

		scraper := &scrape.Scraper{
			Fetcher: fetcher,
			Parser:  parser,
			URLs:    []string{"https://example.com/catalog"},
		}

		_, err := scraper.Catalog(context.Background())

		require.Error(t, err)
		assert.Equal(t, assessrec.EUNAVAILABLE, assessrec.ErrorCode(err))
	})

	t.Run("empty page from a reachable source is not an error", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html><body>layout changed</body></html>", nil
			},
		}
		parser := &mock.CatalogParser{
			ParseCatalogFn: func(html, baseURL string) ([]assessrec.Assessment, error) {
				return nil, nil
			},
		}

		scraper := &scrape.Scraper{
			Fetcher: fetcher,
			Parser:  parser,
			URLs:    []string{"https://example.com/catalog"},
		}

		catalog, err := scraper.Catalog(context.Background())

		require.NoError(t, err)
		assert.Empty(t, catalog)
	})

	t.Run("no configured URLs fails", func(t *testing.T) {
		t.Parallel()

		scraper := &scrape.Scraper{
			Fetcher: &mock.Fetcher{},
			Parser:  &mock.CatalogParser{},
		}

		_, err := scraper.Catalog(context.Background())

		require.Error(t, err)
		assert.Equal(t, assessrec.EINVALID, assessrec.ErrorCode(err))
	})
}
