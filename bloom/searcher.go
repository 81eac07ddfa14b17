package bloom

import "github.com/fwojciec/kwic"

// GramSize is the length in bytes of the n-grams indexed by Searcher.
const GramSize = 3

// DefaultFalsePositiveRate is the false positive rate of the trigram filter.
const DefaultFalsePositiveRate = 0.01

// Ensure Searcher implements kwic.Searcher at compile time.
var _ kwic.Searcher = (*Searcher)(nil)

// Searcher wraps a Searcher with a trigram prefilter. Every substring of the
// document has all of its trigrams in the filter, so a query with a missing
// trigram has no occurrences and the wrapped searcher is skipped.
type Searcher struct {
	next   kwic.Searcher
	filter *Filter
}

// NewSearcher indexes every trigram of text and wraps next.
// text must be the content of the document next searches.
func NewSearcher(next kwic.Searcher, text string) *Searcher {
	f := NewFilter(GramSize, len(text), DefaultFalsePositiveRate)
	f.AddGrams(text)
	return &Searcher{next: next, filter: f}
}

// MayContain reports whether query might occur in the document.
// Queries shorter than GramSize always return true.
func (s *Searcher) MayContain(query string) bool {
	return s.filter.TestGrams(query)
}

// Grams returns the approximate number of distinct trigrams indexed.
func (s *Searcher) Grams() uint {
	return s.filter.EstimatedCount()
}

// Search returns no results for queries the filter rules out and delegates
// everything else. Invalid arguments are always reported.
func (s *Searcher) Search(query string, contextWords int) ([]string, error) {
	if err := kwic.ValidateSearch(query, contextWords); err != nil {
		return nil, err
	}
	if !s.MayContain(query) {
		return []string{}, nil
	}
	return s.next.Search(query, contextWords)
}
