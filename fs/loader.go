// Package fs provides file-based document loading and result output.
package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/kwic"
	"github.com/google/uuid"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Ensure DocumentLoader implements kwic.DocumentLoader at compile time.
var _ kwic.DocumentLoader = (*DocumentLoader)(nil)

// DocumentLoader reads documents from the local filesystem.
type DocumentLoader struct {
	// Now returns the load timestamp. Defaults to time.Now.
	Now func() time.Time
}

// NewDocumentLoader creates a new DocumentLoader.
func NewDocumentLoader() *DocumentLoader {
	return &DocumentLoader{Now: time.Now}
}

// LoadDocument reads the file at path fully into memory.
// Line endings are preserved as-is. A UTF-8 byte order mark is dropped and
// UTF-16 files with a byte order mark are converted to UTF-8.
func (l *DocumentLoader) LoadDocument(ctx context.Context, path string) (*kwic.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if path == "" {
		return nil, kwic.Errorf(kwic.EINVALID, "document path required")
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, kwic.Errorf(kwic.ENOTFOUND, "document %q not found", path)
	} else if err != nil {
		return nil, fmt.Errorf("failed to read document %q: %w", path, err)
	}

	content, err := Decode(raw)
	if err != nil {
		return nil, kwic.Errorf(kwic.EINVALID, "document %q: %s", path, err)
	}

	return &kwic.Document{
		ID:          uuid.NewString(),
		Path:        path,
		Content:     content,
		ContentHash: ComputeHash(content),
		Size:        len(content),
		LoadedAt:    l.now(),
	}, nil
}

func (l *DocumentLoader) now() time.Time {
	if l.Now == nil {
		return time.Now()
	}
	return l.Now()
}

// Decode converts raw file bytes to text.
// Input without a UTF-16 byte order mark must be valid UTF-8.
func Decode(raw []byte) (string, error) {
	if !hasUTF16BOM(raw) && !utf8.Valid(raw) {
		return "", errors.New("invalid UTF-8 text")
	}

	b, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode text: %w", err)
	}
	return string(b), nil
}

func hasUTF16BOM(b []byte) bool {
	if len(b) < 2 {
		return false
	}
	return (b[0] == 0xFE && b[1] == 0xFF) || (b[0] == 0xFF && b[1] == 0xFE)
}

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%x", h)
}
