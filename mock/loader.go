package mock

import (
	"context"

	"github.com/fwojciec/kwic"
)

var _ kwic.DocumentLoader = (*DocumentLoader)(nil)

// DocumentLoader is a mock implementation of kwic.DocumentLoader.
type DocumentLoader struct {
	LoadDocumentFn func(ctx context.Context, path string) (*kwic.Document, error)
}

func (l *DocumentLoader) LoadDocument(ctx context.Context, path string) (*kwic.Document, error) {
	return l.LoadDocumentFn(ctx, path)
}
