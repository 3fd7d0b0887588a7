package service

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/edukatsiya/education-platform/internal/core/domain"
)

type stubUploadStore struct {
	saved []string
}

func (s *stubUploadStore) Save(_ context.Context, ext string, r io.Reader) (string, error) {
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}
	path := "/uploads/file" + ext
	s.saved = append(s.saved, path)
	return path, nil
}

func (s *stubUploadStore) List(_ context.Context) ([]string, error) {
	return s.saved, nil
}

func TestUploadService_SaveImage_AllowedTypes(t *testing.T) {
	store := &stubUploadStore{}
	svc := NewUploadService(store, zerolog.Nop())

	path, err := svc.SaveImage(context.Background(), "photo.png", "image/png", 128, strings.NewReader("data"))
	if err != nil {
		t.Fatalf("save image: %v", err)
	}
	if path != "/uploads/file.png" {
		t.Fatalf("unexpected path: %s", path)
	}
}

func TestUploadService_SaveImage_RejectsType(t *testing.T) {
	svc := NewUploadService(&stubUploadStore{}, zerolog.Nop())

	_, err := svc.SaveImage(context.Background(), "doc.pdf", "application/pdf", 128, strings.NewReader("data"))
	if err != domain.ErrUnsupportedFile {
		t.Fatalf("expected ErrUnsupportedFile, got %v", err)
	}
}

func TestUploadService_SaveImage_RejectsOversize(t *testing.T) {
	svc := NewUploadService(&stubUploadStore{}, zerolog.Nop())

	_, err := svc.SaveImage(context.Background(), "big.jpg", "image/jpeg", MaxUploadSize+1, strings.NewReader("data"))
	if err != domain.ErrFileTooLarge {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
}

func TestUploadService_SaveImage_ExtensionFromContentType(t *testing.T) {
	store := &stubUploadStore{}
	svc := NewUploadService(store, zerolog.Nop())

	// Mismatched extension falls back to the declared content type.
	path, err := svc.SaveImage(context.Background(), "photo.txt", "image/gif", 10, strings.NewReader("x"))
	if err != nil {
		t.Fatalf("save image: %v", err)
	}
	if !strings.HasSuffix(path, ".gif") {
		t.Fatalf("expected .gif suffix, got %s", path)
	}
}
