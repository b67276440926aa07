package mock

import "github.com/fwojciec/assessrec"

var _ assessrec.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of assessrec.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(html string) (string, error)
}

func (e *TextExtractor) ExtractText(html string) (string, error) {
	return e.ExtractTextFn(html)
}
