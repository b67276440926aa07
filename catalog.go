package assessrec

import "context"

// Assessment represents one product entry scraped from the catalog.
// An assessment has no identity beyond its position in the scraped
// sequence and is never persisted across interactions.
type Assessment struct {
	Name          string `json:"name"`
	URL           string `json:"url"`
	RemoteTesting bool   `json:"remoteTesting"`
	AdaptiveIRT   bool   `json:"adaptiveIrt"`
}

// Validate returns an error if the assessment contains invalid fields.
func (a *Assessment) Validate() error {
	if a.Name == "" {
		return Errorf(EINVALID, "assessment name required")
	}
	if a.URL == "" {
		return Errorf(EINVALID, "assessment URL required")
	}
	return nil
}

// CatalogParser extracts assessment entries from catalog page HTML.
type CatalogParser interface {
	// ParseCatalog parses a catalog page and returns its entries in
	// document order. Relative links are resolved against baseURL.
	// An empty result is valid: it means the page had no recognizable
	// product tiles, not that parsing failed.
	ParseCatalog(html string, baseURL string) ([]Assessment, error)
}

// CatalogSource produces a fresh catalog of assessments.
// Implementations rebuild the catalog on every call; nothing is cached
// or shared between interactions.
type CatalogSource interface {
	Catalog(ctx context.Context) ([]Assessment, error)
}
