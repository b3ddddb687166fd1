package repositories

import (
	"errors"

	"landscaping_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryAlreadyExists = errors.New("category with this name already exists")
)

type CategoryRepository interface {
	Create(db *gorm.DB, category *models.Category) error
	FindByID(db *gorm.DB, id string) (*models.Category, error)
	FindBySlug(db *gorm.DB, slug string) (*models.Category, error)
	FindActive(db *gorm.DB) ([]models.Category, error)
	FindAll(db *gorm.DB) ([]models.Category, error)
	Update(db *gorm.DB, category *models.Category) error
	Delete(db *gorm.DB, id string) error
}

type categoryRepository struct{}

func NewCategoryRepository() CategoryRepository {
	return &categoryRepository{}
}

func (r *categoryRepository) Create(db *gorm.DB, category *models.Category) error {
	var count int64
	if err := db.Model(&models.Category{}).
		Where("name = ? OR slug = ?", category.Name, category.Slug).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryAlreadyExists
	}

	return db.Create(category).Error
}

func (r *categoryRepository) FindByID(db *gorm.DB, id string) (*models.Category, error) {
	var category models.Category
	if err := db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindBySlug(db *gorm.DB, slug string) (*models.Category, error) {
	var category models.Category
	if err := db.First(&category, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindActive(db *gorm.DB) ([]models.Category, error) {
	var categories []models.Category
	err := db.Where("is_active = ?", true).Order("name asc").Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) FindAll(db *gorm.DB) ([]models.Category, error) {
	var categories []models.Category
	err := db.Order("name asc").Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) Update(db *gorm.DB, category *models.Category) error {
	var count int64
	if err := db.Model(&models.Category{}).
		Where("(name = ? OR slug = ?) AND id <> ?", category.Name, category.Slug, category.ID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryAlreadyExists
	}

	return db.Save(category).Error
}

func (r *categoryRepository) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Category{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
