package storage

import (
	"context"
	"io"
)

// FileStorage abstracts where uploaded resource files live. The local driver
// writes under the uploads directory served statically by the app; the spaces
// driver pushes to an S3-compatible bucket.
type FileStorage interface {
	// Save stores the content under key and returns the public URL clients
	// use to fetch it.
	Save(ctx context.Context, key string, data io.Reader, contentType string) (string, error)

	// Delete removes the stored file for the given public URL. Callers treat
	// failures as non-fatal; the database row is the authoritative state.
	Delete(ctx context.Context, fileURL string) error
}
