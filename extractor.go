package assessrec

// TextExtractor derives query text from an HTML page.
//
// Extractors are composed into an ordered chain: each strategy is
// tried in turn and the first non-empty result wins. An extractor that
// finds nothing usable returns an empty string without an error.
type TextExtractor interface {
	ExtractText(html string) (string, error)
}
