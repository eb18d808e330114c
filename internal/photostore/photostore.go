// Package photostore persists uploaded point images and serves them back by
// the filename recorded on the point.
package photostore

import (
	"context"
	"errors"
	"io"
)

var (
	// ErrNotFound is returned by Get and Delete for an unknown filename.
	ErrNotFound = errors.New("image not found")

	// ErrInvalidName is returned for a filename that escapes the store.
	ErrInvalidName = errors.New("invalid image filename")
)

type PhotoStore interface {
	// Save stores the image under a newly generated unique filename and
	// returns that filename.
	Save(ctx context.Context, mimeType string, r io.Reader) (filename string, err error)
	Get(ctx context.Context, filename string) (io.ReadCloser, string, error)
	Delete(ctx context.Context, filename string) error
}
