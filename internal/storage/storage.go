package storage

import (
	"context"
	"fmt"
	"io"
)

// Storage is the object-store collaborator. Keys ("storage ids") are opaque
// to callers; the entity owning a key is responsible for deleting it when the
// embedding record goes away — the store does no cascading of its own.
type Storage interface {
	// Save stores a file under the given key
	Save(ctx context.Context, key string, reader io.Reader, contentType string) error

	// Delete removes the object under the key; deleting a missing key is not an error
	Delete(ctx context.Context, key string) error

	// Exists checks whether an object is stored under the key
	Exists(ctx context.Context, key string) (bool, error)

	// GetURL returns the public URL for the key
	GetURL(key string) string
}

// Config holds storage configuration.
type Config struct {
	Type      string // local, s3, cloudflare_r2
	BasePath  string // for local storage
	BaseURL   string // public URL base
	Bucket    string // for S3/R2
	Region    string // for S3
	AccessKey string // for S3/R2
	SecretKey string // for S3/R2
	Endpoint  string // for R2 or custom S3
}

// NewStorage creates a storage backend from configuration.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	case "cloudflare_r2":
		return NewCloudflareR2Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
