package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
)

// File keeps one file per collection key under a data directory.
type File struct {
	root string
}

// NewFile opens (creating if needed) a file-backed store rooted at dir.
func NewFile(dir string) (*File, error) {
	if dir == "" {
		dir = "./data"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &File{root: dir}, nil
}

func (s *File) path(key string) string {
	return filepath.Join(s.root, key+".json")
}

func (s *File) Get(_ context.Context, key string) ([]byte, bool, error) {
	b, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// Put writes through a temp file and renames so readers never observe a
// half-written blob.
func (s *File) Put(_ context.Context, key string, value []byte) error {
	tmp, err := os.CreateTemp(s.root, key+".tmp*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path(key))
}
