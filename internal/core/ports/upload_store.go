package ports

import (
	"context"
	"io"
)

// UploadStore abstracts where uploaded images end up (local disk in the
// current deployment). Save returns the public path of the stored file.
type UploadStore interface {
	Save(ctx context.Context, ext string, r io.Reader) (string, error)
	List(ctx context.Context) ([]string, error)
}

// UploadService validates and stores uploaded images.
type UploadService interface {
	SaveImage(ctx context.Context, filename, contentType string, size int64, r io.Reader) (string, error)
	ListFiles(ctx context.Context) ([]string, error)
}
