package filestorage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type LocalStorage struct {
	root string
}

// NewLocalStorage creates the upload directory up front so a misconfigured
// path fails at startup, not on the first upload.
func NewLocalStorage(root string) (*LocalStorage, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage root: %w", err)
	}

	if err := os.MkdirAll(abs, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}

	return &LocalStorage{root: abs}, nil
}

func (ls *LocalStorage) Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	path := ls.Path(key)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", err
	}

	return path, nil
}

func (ls *LocalStorage) Open(ctx context.Context, key string) (io.ReadCloser, int64, error) {
	f, err := os.Open(ls.Path(key))
	if err != nil {
		// os.Open already reports fs.ErrNotExist for missing files.
		return nil, 0, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, err
	}

	return f, info.Size(), nil
}

func (ls *LocalStorage) Remove(ctx context.Context, key string) error {
	if err := os.Remove(ls.Path(key)); err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}

func (ls *LocalStorage) Path(key string) string {
	// filepath.Base keeps keys from escaping the upload directory.
	return filepath.Join(ls.root, filepath.Base(key))
}
