// Package bloom provides probabilistic deduplication of catalog entry
// URLs merged from multiple source pages.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// DefaultCapacity is sized for the full product catalog with headroom.
const DefaultCapacity = 4096

// Filter tracks entry URLs already added to a catalog. A false
// positive drops a legitimate entry, so the filter is sized generously
// and used only within a single scrape.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected URLs with the given
// false positive rate. A zero n uses DefaultCapacity.
func NewFilter(n uint, fpRate float64) *Filter {
	if n == 0 {
		n = DefaultCapacity
	}
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records an entry URL.
func (f *Filter) Add(url string) {
	f.f.AddString(url)
}

// Seen returns true if the URL was probably added before.
// False negatives are not possible.
func (f *Filter) Seen(url string) bool {
	return f.f.TestString(url)
}

// EstimatedCount returns the approximate number of recorded URLs.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
