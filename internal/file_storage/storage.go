package filestorage

import (
	"context"
	"io"
)

// Storage persists uploaded blobs under caller-chosen keys. Implementations:
// local disk for development, MinIO for deployments.
type Storage interface {
	// Save writes the blob and returns where it ended up (an absolute path
	// for local storage, the object key for s3).
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)

	// Open returns the blob contents and size. A missing blob is reported
	// as fs.ErrNotExist regardless of backend.
	Open(ctx context.Context, key string) (io.ReadCloser, int64, error)

	// Remove deletes the blob. Removing a missing blob is not an error.
	Remove(ctx context.Context, key string) error

	// Path resolves the key to its stored location without touching the blob.
	Path(key string) string
}
