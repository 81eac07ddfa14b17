package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/kwic"
	"github.com/fwojciec/kwic/mock"
	kwicslog "github.com/fwojciec/kwic/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingDocumentLoader_LoadDocument(t *testing.T) {
	t.Parallel()

	t.Run("logs load with size and hash", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.DocumentLoader{
			LoadDocumentFn: func(_ context.Context, path string) (*kwic.Document, error) {
				return &kwic.Document{
					ID:          "doc-123",
					Path:        path,
					Content:     "the cat sat",
					ContentHash: "abc123",
					Size:        11,
				}, nil
			},
		}

		loader := kwicslog.NewLoggingDocumentLoader(inner, logger)
		doc, err := loader.LoadDocument(context.Background(), "book.txt")

		require.NoError(t, err)
		assert.Equal(t, "the cat sat", doc.Content)
		output := buf.String()
		assert.Contains(t, output, "document load")
		assert.Contains(t, output, "path=book.txt")
		assert.Contains(t, output, "id=doc-123")
		assert.Contains(t, output, "size=11")
		assert.Contains(t, output, "hash=abc123")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.DocumentLoader{
			LoadDocumentFn: func(_ context.Context, _ string) (*kwic.Document, error) {
				return nil, errors.New("permission denied")
			},
		}

		loader := kwicslog.NewLoggingDocumentLoader(inner, logger)
		_, err := loader.LoadDocument(context.Background(), "secret.txt")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "path=secret.txt")
		assert.Contains(t, output, "err=\"permission denied\"")
		assert.NotContains(t, output, "size=")
	})
}
