package service

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/edukatsiya/education-platform/internal/core/domain"
	"github.com/edukatsiya/education-platform/internal/core/ports"
)

// MaxUploadSize caps uploaded images at 5 MB.
const MaxUploadSize = 5 << 20

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

// UploadService validates image uploads and hands them to the store.
type UploadService struct {
	store ports.UploadStore
	log   zerolog.Logger
}

func NewUploadService(store ports.UploadStore, log zerolog.Logger) *UploadService {
	return &UploadService{store: store, log: log}
}

// SaveImage rejects anything that is not a JPEG, PNG or GIF under the size
// cap, then stores the content and returns its public path. The extension is
// taken from the original filename when it matches the declared type.
func (s *UploadService) SaveImage(ctx context.Context, filename, contentType string, size int64, r io.Reader) (string, error) {
	canonicalExt, ok := allowedImageTypes[contentType]
	if !ok {
		return "", domain.ErrUnsupportedFile
	}
	if size > MaxUploadSize {
		return "", domain.ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" || (ext != canonicalExt && ext != ".jpeg") {
		ext = canonicalExt
	}

	path, err := s.store.Save(ctx, ext, io.LimitReader(r, MaxUploadSize))
	if err != nil {
		return "", err
	}

	s.log.Info().Str("path", path).Str("content_type", contentType).Msg("image uploaded")
	return path, nil
}

func (s *UploadService) ListFiles(ctx context.Context) ([]string, error) {
	return s.store.List(ctx)
}
