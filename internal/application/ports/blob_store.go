package ports

import (
	"context"
	"io"
)

// BlobStore is the opaque byte store files are kept in. Keys are the
// storage paths recorded on files and folder trees.
type BlobStore interface {
	PutObject(ctx context.Context, key string, r io.Reader, size int64) (string, error)
	GetObject(ctx context.Context, key string) (io.ReadCloser, error)
	DeleteObject(ctx context.Context, key string) error
	GetPublicURL(key string) string
}
