// Package search implements keyword-in-context search over an in-memory document.
package search

import (
	"context"
	"log/slog"

	"github.com/fwojciec/kwic"
)

// Ensure Searcher implements kwic.Searcher at compile time.
var _ kwic.Searcher = (*Searcher)(nil)

// Searcher searches a single immutable document. All state is built once by
// New; Search only reads it, so a Searcher is safe for concurrent use.
type Searcher struct {
	doc    *kwic.Document
	bounds *boundaries
}

// New returns a Searcher over doc and builds its boundary index.
// A nil document is treated as empty.
func New(doc *kwic.Document) *Searcher {
	if doc == nil {
		doc = &kwic.Document{}
	}
	return &Searcher{
		doc:    doc,
		bounds: newBoundaries(doc.Content),
	}
}

// Load reads the document at path and returns a Searcher over it.
// Load never fails: when the loader returns an error it is logged and the
// returned Searcher has an empty document, so every search returns no results.
func Load(ctx context.Context, loader kwic.DocumentLoader, path string, logger *slog.Logger) *Searcher {
	if logger == nil {
		logger = slog.Default()
	}

	doc, err := loader.LoadDocument(ctx, path)
	if err == nil && doc != nil {
		err = doc.Validate()
	}
	if err != nil {
		logger.Error("encountered error starting searcher",
			"path", path,
			"err", err,
		)
		return New(&kwic.Document{Path: path})
	}
	return New(doc)
}

// Document returns the searched document. Callers must not modify it.
func (s *Searcher) Document() *kwic.Document {
	return s.doc
}

// WordCount returns the number of whitespace separated words in the document.
func (s *Searcher) WordCount() int {
	return s.bounds.words()
}

// Search returns the context window around every occurrence of query.
func (s *Searcher) Search(query string, contextWords int) ([]string, error) {
	if err := kwic.ValidateSearch(query, contextWords); err != nil {
		return nil, err
	}

	matches := FindOccurrences(s.doc.Content, query)
	results := make([]string, 0, len(matches))
	for _, m := range matches {
		results = append(results, s.window(m, contextWords))
	}
	return results, nil
}

// window extracts and formats the context around a single match.
func (s *Searcher) window(m kwic.Match, contextWords int) string {
	text := s.doc.Content
	if contextWords == 0 {
		return text[m.Start:m.End]
	}

	lead := s.bounds.leading(m.Start, contextWords)
	trail := s.bounds.trailing(m.End, contextWords)
	return formatWindow(text[lead:trail])
}
