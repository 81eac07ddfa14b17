// Package bloom provides a trigram Bloom filter that rejects queries which
// cannot occur in a document before any scanning takes place.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter is a Bloom filter over the fixed-length byte n-grams of a text.
type Filter struct {
	f *bloom.BloomFilter
	n int
}

// NewFilter creates a filter of n-byte grams sized for the given text length
// and false positive rate.
func NewFilter(n int, textLen int, fpRate float64) *Filter {
	grams := max(textLen-n+1, 1)
	return &Filter{
		f: bloom.NewWithEstimates(uint(grams), fpRate),
		n: n,
	}
}

// AddGrams adds every n-gram of text to the filter.
func (f *Filter) AddGrams(text string) {
	for i := 0; i+f.n <= len(text); i++ {
		f.f.AddString(text[i : i+f.n])
	}
}

// TestGrams reports whether every n-gram of s might be in the filter.
// Strings shorter than n have no grams and always pass.
// False positives are possible; false negatives are not.
func (f *Filter) TestGrams(s string) bool {
	for i := 0; i+f.n <= len(s); i++ {
		if !f.f.TestString(s[i : i+f.n]) {
			return false
		}
	}
	return true
}

// EstimatedCount returns the approximate number of distinct grams added.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
