package mock

import "github.com/fwojciec/kwic"

var _ kwic.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of kwic.Searcher.
type Searcher struct {
	SearchFn func(query string, contextWords int) ([]string, error)
}

func (s *Searcher) Search(query string, contextWords int) ([]string, error) {
	return s.SearchFn(query, contextWords)
}
