package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// FileBackend persists each key as a JSON file in a data directory.
type FileBackend struct {
	dir string
}

// NewFileBackend creates the data directory if needed and returns a backend
// over it.
func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileBackend{dir: dir}, nil
}

// Load reads the document stored under key, or (nil, nil) if none exists.
func (b *FileBackend) Load(key string) ([]byte, error) {
	data, err := os.ReadFile(b.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Save writes the document under key, replacing any previous version.
func (b *FileBackend) Save(key string, data []byte) error {
	return os.WriteFile(b.path(key), data, 0o644)
}

func (b *FileBackend) path(key string) string {
	return filepath.Join(b.dir, key+".json")
}
