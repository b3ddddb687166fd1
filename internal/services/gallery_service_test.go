package services

import (
	"testing"

	"landscaping_backend/internal/dto"
	"landscaping_backend/internal/models"
	"landscaping_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedGalleryItem(repo *fakeGalleryRepo, id string, order int) *models.GalleryItem {
	item := &models.GalleryItem{
		BaseModelWithDeleted: models.BaseModelWithDeleted{
			BaseModel: models.BaseModel{ID: id},
		},
		Title:    "Item " + id,
		Image:    models.ImageRef{URL: "http://files.test/gallery/" + id + ".jpg", StorageID: "gallery/" + id + ".jpg"},
		Order:    order,
		IsActive: true,
	}
	repo.items[id] = item
	return item
}

func TestGalleryReorderAppliesAllPairs(t *testing.T) {
	repo := newFakeGalleryRepo()
	seedGalleryItem(repo, "g1", 0)
	seedGalleryItem(repo, "g2", 1)
	service := NewGalleryService(repo, newFakeStorage(), UploadLimits{})

	err := service.Reorder(testDB(), dto.ReorderGalleryRequest{Items: []dto.ReorderItem{
		{ID: "g1", Order: 1},
		{ID: "g2", Order: 0},
	}})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.items["g1"].Order)
	assert.Equal(t, 0, repo.items["g2"].Order)
}

func TestGalleryReorderUnknownItem(t *testing.T) {
	repo := newFakeGalleryRepo()
	seedGalleryItem(repo, "g1", 0)
	service := NewGalleryService(repo, newFakeStorage(), UploadLimits{})

	err := service.Reorder(testDB(), dto.ReorderGalleryRequest{Items: []dto.ReorderItem{
		{ID: "missing", Order: 3},
	}})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestGalleryDeleteSweepsImage(t *testing.T) {
	repo := newFakeGalleryRepo()
	store := newFakeStorage()
	store.saved["gallery/g1.jpg"] = "image/jpeg"
	seedGalleryItem(repo, "g1", 0)
	service := NewGalleryService(repo, store, UploadLimits{})

	require.NoError(t, service.Delete(testDB(), "g1"))
	assert.Contains(t, store.deleted, "gallery/g1.jpg")
	assert.Empty(t, repo.items)
}

func TestGalleryDeleteKeepsMarkedRowWhenSweepFails(t *testing.T) {
	repo := newFakeGalleryRepo()
	store := newFakeStorage()
	store.failDelete = true
	seedGalleryItem(repo, "g1", 0)
	service := NewGalleryService(repo, store, UploadLimits{})

	require.NoError(t, service.Delete(testDB(), "g1"))
	assert.True(t, repo.marked["g1"])

	_, err := service.GetByID(testDB(), "g1")
	assert.Error(t, err, "marked rows are hidden from reads")

	store.failDelete = false
	require.NoError(t, service.SweepDeleted(testDB()))
	assert.Empty(t, repo.items)
}

func TestGalleryPublicListFiltersInactive(t *testing.T) {
	repo := newFakeGalleryRepo()
	seedGalleryItem(repo, "g1", 0)
	hidden := seedGalleryItem(repo, "g2", 1)
	hidden.IsActive = false
	service := NewGalleryService(repo, newFakeStorage(), UploadLimits{})

	items, err := service.ListPublic(testDB(), dto.GalleryListQuery{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "g1", items[0].ID)
}

func TestGalleryPublicListDefaultLimit(t *testing.T) {
	repo := newFakeGalleryRepo()
	service := NewGalleryService(repo, newFakeStorage(), UploadLimits{})

	_, err := service.ListPublic(testDB(), dto.GalleryListQuery{})
	require.NoError(t, err)
	assert.Equal(t, publicGalleryPageSize, repo.lastFilter.Limit)

	_, err = service.ListPublic(testDB(), dto.GalleryListQuery{Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, repo.lastFilter.Limit)
}
