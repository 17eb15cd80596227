package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"k9hope_backend/internal/config"
)

// Storage stores uploaded veterinary letters.
type Storage interface {
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error
	Get(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
	Exists(ctx context.Context, path string) (bool, error)

	// GetSignedURL returns a temporary download URL. Local storage
	// returns a plain path.
	GetSignedURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}

// NewStorage builds the provider named in configuration.
func NewStorage(cfg config.StorageConfig) (Storage, error) {
	switch cfg.Provider {
	case "local":
		return NewLocalStorage(cfg.LocalPath)
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage provider: %s", cfg.Provider)
	}
}
