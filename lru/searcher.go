// Package lru provides an LRU result cache for kwic searchers.
package lru

import (
	"slices"
	"sync/atomic"

	"github.com/fwojciec/kwic"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the default number of distinct searches to cache.
const DefaultCacheSize = 256

// Ensure Searcher implements kwic.Searcher at compile time.
var _ kwic.Searcher = (*Searcher)(nil)

// cacheKey identifies a search. Searches over an immutable document are
// idempotent, so equal keys always produce equal results.
type cacheKey struct {
	query        string
	contextWords int
}

// Searcher wraps a Searcher with an LRU cache of results.
// Failed searches are not cached.
type Searcher struct {
	next  kwic.Searcher
	cache *lru.Cache[cacheKey, []string]

	hits   atomic.Int64
	misses atomic.Int64
}

// NewSearcher creates a caching searcher holding up to size results.
// A non-positive size uses DefaultCacheSize.
func NewSearcher(next kwic.Searcher, size int) *Searcher {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, _ := lru.New[cacheKey, []string](size)
	return &Searcher{
		next:  next,
		cache: cache,
	}
}

// Search returns cached results if available, otherwise searches and caches.
// The returned slice is owned by the caller.
func (s *Searcher) Search(query string, contextWords int) ([]string, error) {
	key := cacheKey{query: query, contextWords: contextWords}

	if results, ok := s.cache.Get(key); ok {
		s.hits.Add(1)
		return slices.Clone(results), nil
	}
	s.misses.Add(1)

	results, err := s.next.Search(query, contextWords)
	if err != nil {
		return nil, err
	}

	s.cache.Add(key, slices.Clone(results))
	return results, nil
}

// Stats returns the number of cache hits and misses so far.
func (s *Searcher) Stats() (hits, misses int64) {
	return s.hits.Load(), s.misses.Load()
}

// Len returns the number of cached searches.
func (s *Searcher) Len() int {
	return s.cache.Len()
}
