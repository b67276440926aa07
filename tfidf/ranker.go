// Package tfidf implements the similarity ranker with TF-IDF vectors
// and cosine similarity.
//
// The vectorizer is fitted on the catalog assessment names only; the
// query is transformed through the fitted vocabulary, so query terms
// that appear in no assessment name are dropped. This catalog-only
// fitting is a fixed policy of the package.
package tfidf

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/fwojciec/assessrec"
)

// Ensure Ranker implements assessrec.Ranker at compile time.
var _ assessrec.Ranker = (*Ranker)(nil)

// tokenPattern matches lowercased letter/digit runs of length >= 2,
// so one-character fragments never enter the vocabulary.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}]{2,}`)

// Ranker scores catalog entries against a free-text query.
// The zero value is ready to use; Ranker is stateless and safe for
// concurrent use.
type Ranker struct{}

// NewRanker creates a new Ranker.
func NewRanker() *Ranker {
	return &Ranker{}
}

// Rank implements assessrec.Ranker. It is deterministic: identical
// inputs always produce identical output, and equal scores keep their
// catalog order.
func (r *Ranker) Rank(query string, catalog []assessrec.Assessment, topN int) []assessrec.Recommendation {
	if topN <= 0 {
		topN = assessrec.DefaultTopN
	}
	if len(catalog) == 0 {
		return nil
	}

	names := make([]string, len(catalog))
	for i, a := range catalog {
		names[i] = a.Name
	}

	v := fit(names)
	qvec := v.transform(query)

	scores := make([]float64, len(names))
	for i, name := range names {
		scores[i] = dot(qvec, v.transform(name))
	}

	order := make([]int, len(catalog))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})

	if topN > len(order) {
		topN = len(order)
	}
	recs := make([]assessrec.Recommendation, 0, topN)
	for _, i := range order[:topN] {
		recs = append(recs, assessrec.Recommendation{
			Assessment: catalog[i],
			Score:      scores[i],
		})
	}
	return recs
}

// vectorizer holds a vocabulary and IDF weights fitted on a corpus.
type vectorizer struct {
	vocabulary map[string]int
	idf        []float64
}

// fit builds the vocabulary and smoothed IDF weights from the corpus.
// Terms are sorted so vector dimensions are stable across calls.
func fit(corpus []string) *vectorizer {
	df := make(map[string]int)
	for _, text := range corpus {
		seen := make(map[string]struct{})
		for _, tok := range tokenize(text) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	v := &vectorizer{
		vocabulary: make(map[string]int, len(terms)),
		idf:        make([]float64, len(terms)),
	}
	n := float64(len(corpus))
	for i, term := range terms {
		v.vocabulary[term] = i
		// Smoothed IDF: ln((1+n)/(1+df)) + 1
		v.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
	return v
}

// transform produces the L2-normalized TF-IDF vector for text.
// Terms outside the fitted vocabulary are dropped; a text with no
// known terms yields the zero vector.
func (v *vectorizer) transform(text string) []float64 {
	vec := make([]float64, len(v.idf))
	for _, tok := range tokenize(text) {
		if i, ok := v.vocabulary[tok]; ok {
			vec[i] += v.idf[i]
		}
	}

	var norm float64
	for _, x := range vec {
		norm += x * x
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// dot returns the inner product of two equal-length vectors. With
// L2-normalized inputs this is their cosine similarity; the zero
// vector scores 0 against everything.
func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func tokenize(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)
	out := raw[:0]
	for _, tok := range raw {
		if _, stop := stopwords[tok]; stop {
			continue
		}
		out = append(out, tok)
	}
	return out
}
