package kwic

import (
	"context"
	"time"
)

// Document represents a loaded text document. Content is never modified after
// the document has been handed to a searcher.
type Document struct {
	ID          string    `json:"id"`
	Path        string    `json:"path"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	Size        int       `json:"size"`
	LoadedAt    time.Time `json:"loadedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Path == "" {
		return Errorf(EINVALID, "document path required")
	}
	if d.Size != len(d.Content) {
		return Errorf(EINVALID, "document size %d does not match content length %d", d.Size, len(d.Content))
	}
	return nil
}

// DocumentLoader reads a document fully into memory.
type DocumentLoader interface {
	// LoadDocument reads the text resource at path.
	// Returns ENOTFOUND if the resource does not exist and EINVALID if it
	// cannot be decoded as text.
	LoadDocument(ctx context.Context, path string) (*Document, error)
}
