package mock

import (
	"context"

	"github.com/fwojciec/assessrec"
)

var _ assessrec.CatalogParser = (*CatalogParser)(nil)

// CatalogParser is a mock implementation of assessrec.CatalogParser.
type CatalogParser struct {
	ParseCatalogFn func(html string, baseURL string) ([]assessrec.Assessment, error)
}

func (p *CatalogParser) ParseCatalog(html string, baseURL string) ([]assessrec.Assessment, error) {
	return p.ParseCatalogFn(html, baseURL)
}

var _ assessrec.CatalogSource = (*CatalogSource)(nil)

// CatalogSource is a mock implementation of assessrec.CatalogSource.
type CatalogSource struct {
	CatalogFn func(ctx context.Context) ([]assessrec.Assessment, error)
}

func (s *CatalogSource) Catalog(ctx context.Context) ([]assessrec.Assessment, error) {
	return s.CatalogFn(ctx)
}
