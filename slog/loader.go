package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/kwic"
)

// Ensure LoggingDocumentLoader implements kwic.DocumentLoader.
var _ kwic.DocumentLoader = (*LoggingDocumentLoader)(nil)

// LoggingDocumentLoader wraps a DocumentLoader with logging.
type LoggingDocumentLoader struct {
	next   kwic.DocumentLoader
	logger *slog.Logger
}

// NewLoggingDocumentLoader creates a new LoggingDocumentLoader.
func NewLoggingDocumentLoader(next kwic.DocumentLoader, logger *slog.Logger) *LoggingDocumentLoader {
	return &LoggingDocumentLoader{next: next, logger: logger}
}

// LoadDocument delegates to the wrapped loader and logs the operation.
func (l *LoggingDocumentLoader) LoadDocument(ctx context.Context, path string) (doc *kwic.Document, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"path", path,
			"duration", time.Since(begin),
			"err", err,
		}
		if doc != nil {
			attrs = append(attrs,
				"id", doc.ID,
				"size", doc.Size,
				"hash", doc.ContentHash,
			)
		}
		l.logger.Info("document load", attrs...)
	}(time.Now())
	return l.next.LoadDocument(ctx, path)
}
