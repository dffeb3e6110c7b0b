package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"forumhub/internal/storage"
)

const uploadKeyPrefix = "uploads/"

// ErrStorageUnbound is returned when no blob store is configured.
var ErrStorageUnbound = errors.New("blob storage is not configured")

// UploadService stores uploaded files in the blob store.
type UploadService interface {
	// Store writes the file under a timestamped key and returns its public URL.
	Store(ctx context.Context, filename, contentType string, body io.Reader) (url string, err error)
}

type uploadService struct {
	store storage.Store
	now   func() time.Time
}

// NewUploadService creates a new upload service. A nil store is allowed and
// makes every upload fail with ErrStorageUnbound.
func NewUploadService(store storage.Store) UploadService {
	return &uploadService{store: store, now: time.Now}
}

func (s *uploadService) Store(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	if s.store == nil {
		return "", ErrStorageUnbound
	}

	// Millisecond timestamp plus original name. Collisions within the same
	// millisecond are possible and accepted for this scope.
	key := fmt.Sprintf("%s%d-%s", uploadKeyPrefix, s.now().UnixMilli(), filename)

	if err := s.store.Put(ctx, key, contentType, body); err != nil {
		return "", fmt.Errorf("store upload: %w", err)
	}
	return s.store.URL(key), nil
}
