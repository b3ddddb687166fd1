package repositories

import (
	"errors"

	"landscaping_backend/internal/models"

	"gorm.io/gorm"
)

var ErrQuoteNotFound = errors.New("quote request not found")

type QuoteFilter struct {
	Status      string
	ServiceType string
	AssignedTo  string
	Page        int
	Limit       int
}

type QuoteRepository interface {
	Create(db *gorm.DB, quote *models.Quote) error
	FindByID(db *gorm.DB, id string) (*models.Quote, error)
	List(db *gorm.DB, filter QuoteFilter) ([]models.Quote, int64, error)
	Update(db *gorm.DB, quote *models.Quote) error
	CountByStatus(db *gorm.DB) (map[string]int64, error)
	MarkDeleted(db *gorm.DB, id string) error
	HardDelete(db *gorm.DB, id string) error
	FindMarkedDeleted(db *gorm.DB) ([]models.Quote, error)
}

type quoteRepository struct{}

func NewQuoteRepository() QuoteRepository {
	return &quoteRepository{}
}

func (r *quoteRepository) Create(db *gorm.DB, quote *models.Quote) error {
	return db.Create(quote).Error
}

func (r *quoteRepository) FindByID(db *gorm.DB, id string) (*models.Quote, error) {
	var quote models.Quote
	if err := db.Preload("AssignedTo").First(&quote, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuoteNotFound
		}
		return nil, err
	}
	return &quote, nil
}

func (r *quoteRepository) List(db *gorm.DB, filter QuoteFilter) ([]models.Quote, int64, error) {
	query := db.Model(&models.Quote{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.ServiceType != "" {
		query = query.Where("service_type = ?", filter.ServiceType)
	}
	if filter.AssignedTo != "" {
		query = query.Where("assigned_to_id = ?", filter.AssignedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var quotes []models.Quote
	err := query.Preload("AssignedTo").
		Order("created_at desc").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&quotes).Error
	return quotes, total, err
}

func (r *quoteRepository) Update(db *gorm.DB, quote *models.Quote) error {
	return db.Save(quote).Error
}

func (r *quoteRepository) CountByStatus(db *gorm.DB) (map[string]int64, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	err := db.Model(&models.Quote{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}

func (r *quoteRepository) MarkDeleted(db *gorm.DB, id string) error {
	result := db.Delete(&models.Quote{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrQuoteNotFound
	}
	return nil
}

func (r *quoteRepository) HardDelete(db *gorm.DB, id string) error {
	return db.Unscoped().Delete(&models.Quote{}, "id = ?", id).Error
}

func (r *quoteRepository) FindMarkedDeleted(db *gorm.DB) ([]models.Quote, error) {
	var quotes []models.Quote
	err := db.Unscoped().Where("deleted_at IS NOT NULL").Find(&quotes).Error
	return quotes, err
}
