package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"landscaping_backend/internal/models"
	"landscaping_backend/internal/storage"
	"landscaping_backend/pkg/apperrors"

	"github.com/google/uuid"
)

// UploadLimits bounds one multipart submission.
type UploadLimits struct {
	MaxFiles     int
	MaxSize      int64
	AllowedTypes []string
}

// storedFile is one object written to the store during a request.
type storedFile struct {
	Key      string
	URL      string
	Filename string
}

// storeFiles validates and persists a batch of multipart files under
// "<prefix>/<uuid><ext>" keys. On any failure already-written objects are
// removed so a rejected request leaves nothing behind.
func storeFiles(ctx context.Context, store storage.Storage, prefix string, files []*multipart.FileHeader, limits UploadLimits) ([]storedFile, error) {
	if len(files) == 0 {
		return nil, nil
	}
	if limits.MaxFiles > 0 && len(files) > limits.MaxFiles {
		return nil, apperrors.ErrTooManyFiles
	}

	stored := make([]storedFile, 0, len(files))
	cleanup := func() {
		for _, f := range stored {
			_ = store.Delete(ctx, f.Key)
		}
	}

	for _, fh := range files {
		if limits.MaxSize > 0 && fh.Size > limits.MaxSize {
			cleanup()
			return nil, apperrors.ErrFileTooLarge
		}

		contentType := fh.Header.Get("Content-Type")
		if !typeAllowed(contentType, limits.AllowedTypes) {
			cleanup()
			return nil, apperrors.ErrInvalidFileType
		}

		src, err := fh.Open()
		if err != nil {
			cleanup()
			return nil, fmt.Errorf("failed to open uploaded file: %w", err)
		}

		key := fmt.Sprintf("%s/%s%s", prefix, uuid.NewString(), strings.ToLower(filepath.Ext(fh.Filename)))
		err = store.Save(ctx, key, src, contentType)
		src.Close()
		if err != nil {
			cleanup()
			return nil, fmt.Errorf("failed to store uploaded file: %w", err)
		}

		stored = append(stored, storedFile{
			Key:      key,
			URL:      store.GetURL(key),
			Filename: fh.Filename,
		})
	}

	return stored, nil
}

func typeAllowed(contentType string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, t := range allowed {
		if strings.EqualFold(t, contentType) {
			return true
		}
	}
	return false
}

// deleteStoredObjects sweeps the object-store keys referenced by a record
// being deleted. Every key is attempted; failures are collected so the caller
// can retry the sweep later.
func deleteStoredObjects(ctx context.Context, store storage.Storage, keys []string) error {
	var errs []error
	for _, key := range keys {
		if key == "" {
			continue
		}
		if err := store.Delete(ctx, key); err != nil {
			errs = append(errs, fmt.Errorf("failed to delete stored object %s: %w", key, err))
		}
	}
	return errors.Join(errs...)
}

func attachmentsFromStored(stored []storedFile) []models.Attachment {
	out := make([]models.Attachment, 0, len(stored))
	for _, f := range stored {
		out = append(out, models.Attachment{
			URL:       f.URL,
			StorageID: f.Key,
			Filename:  f.Filename,
		})
	}
	return out
}
