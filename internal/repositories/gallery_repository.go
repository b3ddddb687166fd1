package repositories

import (
	"errors"

	"landscaping_backend/internal/models"

	"gorm.io/gorm"
)

var ErrGalleryItemNotFound = errors.New("gallery item not found")

type GalleryFilter struct {
	CategoryID   string
	ProjectID    string
	FeaturedOnly bool
	ActiveOnly   bool
	Page         int
	Limit        int
}

type GalleryRepository interface {
	Create(db *gorm.DB, item *models.GalleryItem) error
	FindByID(db *gorm.DB, id string) (*models.GalleryItem, error)
	List(db *gorm.DB, filter GalleryFilter) ([]models.GalleryItem, int64, error)
	Update(db *gorm.DB, item *models.GalleryItem) error
	UpdateOrders(db *gorm.DB, orders map[string]int) error
	MarkDeleted(db *gorm.DB, id string) error
	HardDelete(db *gorm.DB, id string) error
	FindMarkedDeleted(db *gorm.DB) ([]models.GalleryItem, error)
}

type galleryRepository struct{}

func NewGalleryRepository() GalleryRepository {
	return &galleryRepository{}
}

func (r *galleryRepository) Create(db *gorm.DB, item *models.GalleryItem) error {
	return db.Create(item).Error
}

func (r *galleryRepository) FindByID(db *gorm.DB, id string) (*models.GalleryItem, error) {
	var item models.GalleryItem
	if err := db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGalleryItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *galleryRepository) List(db *gorm.DB, filter GalleryFilter) ([]models.GalleryItem, int64, error) {
	query := db.Model(&models.GalleryItem{})

	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.ProjectID != "" {
		query = query.Where("project_id = ?", filter.ProjectID)
	}
	if filter.FeaturedOnly {
		query = query.Where("featured = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("display_order asc, created_at desc")
	if filter.Limit > 0 {
		query = query.Offset((filter.Page - 1) * filter.Limit).Limit(filter.Limit)
	}

	var items []models.GalleryItem
	err := query.Find(&items).Error
	return items, total, err
}

func (r *galleryRepository) Update(db *gorm.DB, item *models.GalleryItem) error {
	return db.Save(item).Error
}

// UpdateOrders applies a batch of display_order changes in one transaction so
// a partial reorder never persists.
func (r *galleryRepository) UpdateOrders(db *gorm.DB, orders map[string]int) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for id, order := range orders {
			result := tx.Model(&models.GalleryItem{}).
				Where("id = ?", id).
				Update("display_order", order)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrGalleryItemNotFound
			}
		}
		return nil
	})
}

func (r *galleryRepository) MarkDeleted(db *gorm.DB, id string) error {
	result := db.Delete(&models.GalleryItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGalleryItemNotFound
	}
	return nil
}

func (r *galleryRepository) HardDelete(db *gorm.DB, id string) error {
	return db.Unscoped().Delete(&models.GalleryItem{}, "id = ?", id).Error
}

func (r *galleryRepository) FindMarkedDeleted(db *gorm.DB) ([]models.GalleryItem, error) {
	var items []models.GalleryItem
	err := db.Unscoped().Where("deleted_at IS NOT NULL").Find(&items).Error
	return items, err
}
