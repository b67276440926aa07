// Package readability provides the last-resort query text extraction
// strategy, built on go-readability's article scoring.
package readability

import (
	"strings"

	"github.com/fwojciec/assessrec"
	readability "github.com/go-shiori/go-readability"
)

// Ensure Extractor implements assessrec.TextExtractor at compile time.
var _ assessrec.TextExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to pull article text out of HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText implements assessrec.TextExtractor. Pages readability
// cannot score as articles yield an empty string, not an error.
func (e *Extractor) ExtractText(rawHTML string) (string, error) {
	if rawHTML == "" {
		return "", assessrec.Errorf(assessrec.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return "", err
	}

	return strings.Join(strings.Fields(article.TextContent), " "), nil
}
