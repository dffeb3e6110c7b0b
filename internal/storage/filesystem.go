package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FileSystem stores blobs as plain files under a base directory. The server
// exposes the base directory under publicPrefix, so URL(key) is simply the
// prefix joined with the key. Content type metadata is not persisted; the
// static file layer re-detects it from the file extension when serving.
type FileSystem struct {
	basedir      string
	publicPrefix string
}

var _ Store = (*FileSystem)(nil)

// NewFileSystem creates a filesystem store rooted at basedir, publicly
// reachable under publicPrefix.
func NewFileSystem(basedir, publicPrefix string) (*FileSystem, error) {
	if err := os.MkdirAll(basedir, 0o755); err != nil {
		return nil, fmt.Errorf("init storage dir: %w", err)
	}
	return &FileSystem{
		basedir:      basedir,
		publicPrefix: strings.TrimSuffix(publicPrefix, "/"),
	}, nil
}

// Put writes the blob to disk under the given key. Path traversal in keys is
// rejected before anything touches the filesystem.
func (fs *FileSystem) Put(ctx context.Context, key, contentType string, body io.Reader) error {
	filename, err := fs.filename(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return fmt.Errorf("create blob dir: %w", err)
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create blob file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, body); err != nil {
		return fmt.Errorf("write blob: %w", err)
	}
	return nil
}

// URL returns the public path the blob is served from.
func (fs *FileSystem) URL(key string) string {
	return fs.publicPrefix + "/" + strings.TrimPrefix(key, "/")
}

func (fs *FileSystem) filename(key string) (string, error) {
	cleaned := filepath.Clean("/" + key)
	if cleaned == "/" || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid blob key %q", key)
	}
	return filepath.Join(fs.basedir, cleaned), nil
}
