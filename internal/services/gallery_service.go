package services

import (
	"context"
	"errors"
	"mime/multipart"

	"landscaping_backend/internal/dto"
	"landscaping_backend/internal/logger"
	"landscaping_backend/internal/models"
	"landscaping_backend/internal/repositories"
	"landscaping_backend/internal/storage"
	"landscaping_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type GalleryService interface {
	Create(db *gorm.DB, req dto.CreateGalleryItemRequest, image *multipart.FileHeader) (*models.GalleryItem, error)
	GetByID(db *gorm.DB, id string) (*models.GalleryItem, error)
	ListPublic(db *gorm.DB, query dto.GalleryListQuery) ([]models.GalleryItem, error)
	ListAll(db *gorm.DB, page, limit int) ([]models.GalleryItem, int64, error)
	Update(db *gorm.DB, id string, req dto.UpdateGalleryItemRequest, image *multipart.FileHeader) (*models.GalleryItem, error)
	Reorder(db *gorm.DB, req dto.ReorderGalleryRequest) error
	Delete(db *gorm.DB, id string) error
	SweepDeleted(db *gorm.DB) error
}

type galleryService struct {
	galleryRepo repositories.GalleryRepository
	store       storage.Storage
	limits      UploadLimits
}

func NewGalleryService(galleryRepo repositories.GalleryRepository, store storage.Storage, limits UploadLimits) GalleryService {
	limits.MaxFiles = 1
	return &galleryService{galleryRepo: galleryRepo, store: store, limits: limits}
}

func (s *galleryService) Create(db *gorm.DB, req dto.CreateGalleryItemRequest, image *multipart.FileHeader) (*models.GalleryItem, error) {
	if image == nil {
		return nil, apperrors.NewBadRequestError("An image file is required")
	}

	ctx := db.Statement.Context
	stored, err := storeFiles(ctx, s.store, "gallery", []*multipart.FileHeader{image}, s.limits)
	if err != nil {
		return nil, uploadError(err)
	}

	item := &models.GalleryItem{
		Title:       req.Title,
		Description: req.Description,
		Image: models.ImageRef{
			URL:       stored[0].URL,
			StorageID: stored[0].Key,
		},
		CategoryID: req.CategoryID,
		ProjectID:  req.ProjectID,
		Order:      req.Order,
		Featured:   req.Featured,
		IsActive:   true,
	}

	if err := s.galleryRepo.Create(db, item); err != nil {
		_ = deleteStoredObjects(ctx, s.store, []string{stored[0].Key})
		return nil, apperrors.InternalError(err)
	}
	return item, nil
}

func (s *galleryService) GetByID(db *gorm.DB, id string) (*models.GalleryItem, error) {
	item, err := s.galleryRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrGalleryItemNotFound) {
			return nil, apperrors.ErrNotFound(err, "gallery", "Gallery item not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return item, nil
}

// publicGalleryPageSize caps the public gallery when no limit is given.
const publicGalleryPageSize = 20

// ListPublic returns active items in display order, capped by the requested
// limit (default 20); no pagination envelope.
func (s *galleryService) ListPublic(db *gorm.DB, query dto.GalleryListQuery) ([]models.GalleryItem, error) {
	filter := repositories.GalleryFilter{
		CategoryID:   query.Category,
		FeaturedOnly: query.Featured == "true",
		ActiveOnly:   true,
		Page:         1,
		Limit:        query.Limit,
	}
	if filter.Limit < 1 {
		filter.Limit = publicGalleryPageSize
	}

	items, _, err := s.galleryRepo.List(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}

func (s *galleryService) ListAll(db *gorm.DB, page, limit int) ([]models.GalleryItem, int64, error) {
	items, total, err := s.galleryRepo.List(db, repositories.GalleryFilter{Page: page, Limit: limit})
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return items, total, nil
}

// Update merges the partial request; a replacement image deletes the old
// stored object before the new reference is saved.
func (s *galleryService) Update(db *gorm.DB, id string, req dto.UpdateGalleryItemRequest, image *multipart.FileHeader) (*models.GalleryItem, error) {
	item, err := s.GetByID(db, id)
	if err != nil {
		return nil, err
	}

	if image != nil {
		ctx := db.Statement.Context
		stored, err := storeFiles(ctx, s.store, "gallery", []*multipart.FileHeader{image}, s.limits)
		if err != nil {
			return nil, uploadError(err)
		}
		if item.Image.StorageID != "" {
			if err := s.store.Delete(ctx, item.Image.StorageID); err != nil {
				logger.CtxWarn(ctx, "failed to delete replaced gallery image",
					"gallery_item_id", id, "storage_id", item.Image.StorageID, "error", err)
			}
		}
		item.Image = models.ImageRef{URL: stored[0].URL, StorageID: stored[0].Key}
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.CategoryID != nil {
		item.CategoryID = req.CategoryID
	}
	if req.ProjectID != nil {
		item.ProjectID = req.ProjectID
	}
	if req.Order != nil {
		item.Order = *req.Order
	}
	if req.Featured != nil {
		item.Featured = *req.Featured
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := s.galleryRepo.Update(db, item); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return item, nil
}

func (s *galleryService) Reorder(db *gorm.DB, req dto.ReorderGalleryRequest) error {
	orders := make(map[string]int, len(req.Items))
	for _, item := range req.Items {
		orders[item.ID] = item.Order
	}

	if err := s.galleryRepo.UpdateOrders(db, orders); err != nil {
		if errors.Is(err, repositories.ErrGalleryItemNotFound) {
			return apperrors.ErrNotFound(err, "gallery", "One of the gallery items does not exist")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// Delete runs the mark, sweep, remove sequence; on sweep failure the marked
// row is left for the cleanup worker.
func (s *galleryService) Delete(db *gorm.DB, id string) error {
	item, err := s.GetByID(db, id)
	if err != nil {
		return err
	}

	if err := s.galleryRepo.MarkDeleted(db, id); err != nil {
		if errors.Is(err, repositories.ErrGalleryItemNotFound) {
			return apperrors.ErrNotFound(err, "gallery", "Gallery item not found")
		}
		return apperrors.InternalError(err)
	}

	ctx := db.Statement.Context
	if err := deleteStoredObjects(ctx, s.store, []string{item.Image.StorageID}); err != nil {
		logger.CtxWarn(ctx, "gallery storage sweep failed, row left for cleanup",
			"gallery_item_id", id, "error", err)
		return nil
	}

	if err := s.galleryRepo.HardDelete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *galleryService) SweepDeleted(db *gorm.DB) error {
	items, err := s.galleryRepo.FindMarkedDeleted(db)
	if err != nil {
		return err
	}

	ctx := db.Statement.Context
	if ctx == nil {
		ctx = context.Background()
	}
	for _, item := range items {
		if err := deleteStoredObjects(ctx, s.store, []string{item.Image.StorageID}); err != nil {
			logger.CtxWarn(ctx, "gallery storage sweep retry failed", "gallery_item_id", item.ID, "error", err)
			continue
		}
		if err := s.galleryRepo.HardDelete(db, item.ID); err != nil {
			logger.CtxWarn(ctx, "failed to remove swept gallery row", "gallery_item_id", item.ID, "error", err)
		}
	}
	return nil
}
