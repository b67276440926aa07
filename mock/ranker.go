package mock

import "github.com/fwojciec/assessrec"

var _ assessrec.Ranker = (*Ranker)(nil)

// Ranker is a mock implementation of assessrec.Ranker.
type Ranker struct {
	RankFn func(query string, catalog []assessrec.Assessment, topN int) []assessrec.Recommendation
}

func (r *Ranker) Rank(query string, catalog []assessrec.Assessment, topN int) []assessrec.Recommendation {
	return r.RankFn(query, catalog, topN)
}
