// Package goquery provides CSS-selector based implementations of the
// catalog parser and the paragraph text extractor.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/assessrec"
)

// Ensure CatalogParser implements assessrec.CatalogParser at compile time.
var _ assessrec.CatalogParser = (*CatalogParser)(nil)

// strategy describes one way of locating product tiles on a catalog
// page. Each matched tile contributes at most one entry, taken from
// its first anchor.
type strategy struct {
	name     string
	selector string
}

// Strategies are tried in order until one yields entries. The table
// layout is the current catalog structure; the tile and content-link
// selectors cover layouts the page has used before and may return to.
var strategies = []strategy{
	{name: "table-rows", selector: "tr"},
	{name: "product-tiles", selector: ".product-catalogue__tile, .product-card, li.product, div.product"},
	{name: "content-links", selector: "main li, article li"},
}

// CatalogParser extracts assessment entries from catalog page HTML.
// The zero value is ready to use.
type CatalogParser struct{}

// NewCatalogParser creates a new CatalogParser.
func NewCatalogParser() *CatalogParser {
	return &CatalogParser{}
}

// ParseCatalog implements assessrec.CatalogParser. Tiles without an
// anchor (header rows, decorative rows) are skipped; entries are
// deduplicated by resolved URL keeping the first occurrence. A page
// where no strategy matches yields an empty result, not an error.
func (p *CatalogParser) ParseCatalog(rawHTML string, baseURL string) ([]assessrec.Assessment, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, assessrec.Errorf(assessrec.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, assessrec.Errorf(assessrec.EINVALID, "failed to parse HTML: %v", err)
	}

	for _, s := range strategies {
		if entries := extractEntries(doc, base, s.selector); len(entries) > 0 {
			return entries, nil
		}
	}
	return nil, nil
}

// extractEntries pulls one assessment per matched tile. The support
// flags are a keyword search over the tile's rendered text: "remote"
// marks remote testing, "adaptive" or "irt" marks adaptive/IRT.
func extractEntries(doc *goquery.Document, base *url.URL, selector string) []assessrec.Assessment {
	seen := make(map[string]bool)
	var entries []assessrec.Assessment

	doc.Find(selector).Each(func(_ int, tile *goquery.Selection) {
		anchor := tile.Find("a[href]").First()
		href, exists := anchor.Attr("href")
		if !exists || href == "" || isNonHTTPLink(href) {
			return
		}

		name := strings.TrimSpace(anchor.Text())
		if name == "" {
			return
		}

		link := resolveURL(base, href)
		if link == "" || seen[link] {
			return
		}
		seen[link] = true

		text := strings.ToLower(tile.Text())
		entries = append(entries, assessrec.Assessment{
			Name:          name,
			URL:           link,
			RemoteTesting: strings.Contains(text, "remote"),
			AdaptiveIRT:   strings.Contains(text, "adaptive") || strings.Contains(text, "irt"),
		})
	})

	return entries
}

// resolveURL resolves href against the catalog base URL and strips
// fragments so the same product page deduplicates regardless of
// anchors. Unparseable hrefs resolve to an empty string.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""
	return resolved.String()
}

// isNonHTTPLink reports whether href points outside the web entirely.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
