package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/assessrec"
)

// Ensure TextExtractor implements assessrec.TextExtractor at compile time.
var _ assessrec.TextExtractor = (*TextExtractor)(nil)

// TextExtractor derives query text from a page by concatenating the
// text of its paragraph elements.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// ExtractText implements assessrec.TextExtractor. Paragraph texts are
// space-joined with runs of whitespace collapsed. A page without
// paragraphs yields an empty string so the next strategy in the chain
// can take over.
func (e *TextExtractor) ExtractText(rawHTML string) (string, error) {
	if rawHTML == "" {
		return "", assessrec.Errorf(assessrec.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", assessrec.Errorf(assessrec.EINVALID, "failed to parse HTML: %v", err)
	}

	var parts []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			parts = append(parts, text)
		}
	})

	return strings.Join(strings.Fields(strings.Join(parts, " ")), " "), nil
}
