package repositories

import (
	"errors"

	"landscaping_backend/internal/models"

	"gorm.io/gorm"
)

var ErrTestimonialNotFound = errors.New("testimonial not found")

type TestimonialFilter struct {
	Status       string
	FeaturedOnly bool
	Page         int
	Limit        int
}

type TestimonialRepository interface {
	Create(db *gorm.DB, testimonial *models.Testimonial) error
	FindByID(db *gorm.DB, id string) (*models.Testimonial, error)
	List(db *gorm.DB, filter TestimonialFilter) ([]models.Testimonial, int64, error)
	Update(db *gorm.DB, testimonial *models.Testimonial) error
	Delete(db *gorm.DB, id string) error
}

type testimonialRepository struct{}

func NewTestimonialRepository() TestimonialRepository {
	return &testimonialRepository{}
}

func (r *testimonialRepository) Create(db *gorm.DB, testimonial *models.Testimonial) error {
	return db.Create(testimonial).Error
}

func (r *testimonialRepository) FindByID(db *gorm.DB, id string) (*models.Testimonial, error) {
	var testimonial models.Testimonial
	if err := db.First(&testimonial, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTestimonialNotFound
		}
		return nil, err
	}
	return &testimonial, nil
}

func (r *testimonialRepository) List(db *gorm.DB, filter TestimonialFilter) ([]models.Testimonial, int64, error) {
	query := db.Model(&models.Testimonial{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.FeaturedOnly {
		query = query.Where("featured = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at desc")
	if filter.Limit > 0 {
		query = query.Offset((filter.Page - 1) * filter.Limit).Limit(filter.Limit)
	}

	var testimonials []models.Testimonial
	err := query.Find(&testimonials).Error
	return testimonials, total, err
}

func (r *testimonialRepository) Update(db *gorm.DB, testimonial *models.Testimonial) error {
	return db.Save(testimonial).Error
}

func (r *testimonialRepository) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Testimonial{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTestimonialNotFound
	}
	return nil
}
