// Package trafilatura provides a main-content fallback for query text
// extraction, used when paragraph selection finds nothing on a page.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/assessrec"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements assessrec.TextExtractor at compile time.
var _ assessrec.TextExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract the main content of a page
// as plain text, with boilerplate removed.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText implements assessrec.TextExtractor.
func (e *Extractor) ExtractText(rawHTML string) (string, error) {
	if rawHTML == "" {
		return "", assessrec.Errorf(assessrec.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", err
	}

	if text := strings.TrimSpace(result.ContentText); text != "" {
		return collapse(text), nil
	}
	if result.ContentNode != nil {
		return collapse(nodeText(result.ContentNode)), nil
	}
	return "", nil
}

// nodeText collects the text content of a node tree.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
