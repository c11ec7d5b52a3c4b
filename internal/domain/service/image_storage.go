package service

import (
	"context"
	"errors"
	"io"
)

// ErrImageNotFound is returned by ImageStorage.Open for unknown keys.
var ErrImageNotFound = errors.New("image not found")

// StoredImage is an open image object. The caller must close Body.
type StoredImage struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// ImageStorage stores product images under flat keys.
type ImageStorage interface {
	// Put writes the content under key.
	Put(ctx context.Context, key, contentType string, r io.Reader) error

	// Open returns a reader for key.
	Open(ctx context.Context, key string) (*StoredImage, error)

	// Close releases the underlying bucket.
	Close() error
}
