// Package bloom provides duplicate-content detection using Bloom filters.
// The page loader uses it as a cheap first pass over content hashes before
// consulting the exact seen-set.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter keyed by page content hashes.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds a content hash to the filter.
func (f *Filter) Add(hash string) {
	f.f.AddString(hash)
}

// Test returns true if the hash might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(hash string) bool {
	return f.f.TestString(hash)
}

// EstimatedCount returns the approximate number of items in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
