package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalStorageSaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	if err != nil {
		t.Fatalf("NewLocalStorage failed: %v", err)
	}

	url, err := store.Save(context.Background(), "notes.pdf", strings.NewReader("%PDF-1.4 fake"), "application/pdf")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if url != URLPrefix+"notes.pdf" {
		t.Errorf("expected URL %q, got %q", URLPrefix+"notes.pdf", url)
	}

	content, err := os.ReadFile(filepath.Join(dir, "notes.pdf"))
	if err != nil {
		t.Fatalf("reading stored file failed: %v", err)
	}
	if string(content) != "%PDF-1.4 fake" {
		t.Errorf("stored content mismatch: %q", content)
	}

	if err := store.Delete(context.Background(), url); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "notes.pdf")); !os.IsNotExist(err) {
		t.Error("expected the file to be removed")
	}
}

func TestLocalStorageSaveStripsPathComponents(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	if err != nil {
		t.Fatalf("NewLocalStorage failed: %v", err)
	}

	url, err := store.Save(context.Background(), "../escape.txt", strings.NewReader("x"), "text/plain")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if url != URLPrefix+"escape.txt" {
		t.Errorf("expected the key to be flattened, got %q", url)
	}

	if _, err := os.Stat(filepath.Join(dir, "escape.txt")); err != nil {
		t.Errorf("expected file inside the upload dir: %v", err)
	}
}

func TestLocalStorageDeleteRejectsForeignURLs(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage failed: %v", err)
	}

	if err := store.Delete(context.Background(), "https://cdn.example.com/file.pdf"); err != ErrNotManaged {
		t.Errorf("expected ErrNotManaged, got %v", err)
	}
}
