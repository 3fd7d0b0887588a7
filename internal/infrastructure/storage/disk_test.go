package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiskStoreSaveAndList(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskStore(dir)

	path, err := store.Save(context.Background(), ".jpg", strings.NewReader("fake image bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(path, "/uploads/") || !strings.HasSuffix(path, ".jpg") {
		t.Errorf("unexpected public path %q", path)
	}

	data, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(path, "/uploads/")))
	if err != nil {
		t.Fatalf("stored file not readable: %v", err)
	}
	if string(data) != "fake image bytes" {
		t.Errorf("stored content = %q", data)
	}

	files, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 1 || files[0] != path {
		t.Errorf("List = %v, want [%s]", files, path)
	}
}

func TestDiskStoreCreatesMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	store := NewDiskStore(dir)

	if _, err := store.Save(context.Background(), ".png", strings.NewReader("x")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDiskStoreListEmptyWhenDirMissing(t *testing.T) {
	store := NewDiskStore(filepath.Join(t.TempDir(), "never-created"))

	files, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("List = %v, want empty", files)
	}
}
