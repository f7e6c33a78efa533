package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Storage abstracts the handful of file operations the store needs, so
// tests can run against an in-memory implementation.
type Storage interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
	CopyFile(src, dst string) error
	DeleteFile(path string) error
	Exists(path string) bool
}

// OSStorage implements Storage on the real filesystem.
type OSStorage struct{}

func (OSStorage) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (OSStorage) WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (OSStorage) CopyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0644)
}

func (OSStorage) DeleteFile(path string) error {
	err := os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (OSStorage) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
