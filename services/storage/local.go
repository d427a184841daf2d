package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// URLPrefix is the public path prefix local uploads are served under.
const URLPrefix = "/uploads/"

var ErrNotManaged = errors.New("file URL is not managed by this storage")

// LocalStorage keeps uploaded files on disk under a single directory.
type LocalStorage struct {
	dir string
}

// NewLocalStorage creates the uploads directory if needed.
func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LocalStorage{dir: dir}, nil
}

// Dir returns the directory files are stored in.
func (s *LocalStorage) Dir() string {
	return s.dir
}

// Save writes the content to disk and returns its /uploads/ URL.
func (s *LocalStorage) Save(_ context.Context, key string, data io.Reader, _ string) (string, error) {
	// Keys never contain path separators, but never trust the caller
	key = filepath.Base(key)

	path := filepath.Join(s.dir, key)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, data); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return URLPrefix + key, nil
}

// Delete removes the backing file for a /uploads/ URL.
func (s *LocalStorage) Delete(_ context.Context, fileURL string) error {
	if !strings.HasPrefix(fileURL, URLPrefix) {
		return ErrNotManaged
	}

	key := filepath.Base(strings.TrimPrefix(fileURL, URLPrefix))
	return os.Remove(filepath.Join(s.dir, key))
}
