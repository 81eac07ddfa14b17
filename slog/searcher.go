// Package slog provides logging decorators for kwic services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/kwic"
)

// Ensure LoggingSearcher implements kwic.Searcher.
var _ kwic.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with logging of every search.
type LoggingSearcher struct {
	next   kwic.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next kwic.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the operation.
func (s *LoggingSearcher) Search(query string, contextWords int) (results []string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("search",
			"query", query,
			"contextWords", contextWords,
			"count", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(query, contextWords)
}
