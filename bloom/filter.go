// Package bloom provides approximate distinct counting of URLs using
// Bloom filters.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter remembers URLs it has seen and counts the distinct ones.
// False positives make the count an underestimate; it never overcounts.
type Filter struct {
	f     *bloom.BloomFilter
	count uint
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a URL. It returns true if the URL was not seen before.
func (f *Filter) Add(url string) bool {
	if f.f.TestAndAddString(url) {
		return false
	}
	f.count++
	return true
}

// Count returns the number of distinct URLs added so far.
func (f *Filter) Count() uint {
	return f.count
}
