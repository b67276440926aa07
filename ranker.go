package assessrec

// DefaultTopN is the number of recommendations returned when the
// caller does not specify a limit.
const DefaultTopN = 10

// Recommendation pairs a catalog assessment with its similarity score.
// The score is used for ordering only and is excluded from the JSON
// export.
type Recommendation struct {
	Assessment
	Score float64 `json:"-"`
}

// Ranker orders catalog entries by textual similarity to a query.
type Ranker interface {
	// Rank returns at most topN recommendations sorted by descending
	// score, ties keeping their catalog order. A non-positive topN
	// falls back to DefaultTopN; a topN larger than the catalog is
	// clamped to its size. Rank is a pure function of its inputs and
	// never fails: a query sharing no vocabulary with the catalog
	// yields zero scores, not an error.
	Rank(query string, catalog []Assessment, topN int) []Recommendation
}
