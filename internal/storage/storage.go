// Package storage provides the key-addressed blob store used for uploads.
package storage

import (
	"context"
	"io"
)

// Store is a key-addressed blob store. Keys are slash-separated paths
// relative to the store root; URL maps a key to the public path it will be
// served from.
type Store interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) error
	URL(key string) string
}
