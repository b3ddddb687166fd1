package repositories

import (
	"errors"

	"landscaping_backend/internal/models"

	"gorm.io/gorm"
)

var ErrContactNotFound = errors.New("contact not found")

type ContactFilter struct {
	Status string
	Page   int
	Limit  int
}

type ContactRepository interface {
	Create(db *gorm.DB, contact *models.Contact) error
	FindByID(db *gorm.DB, id string) (*models.Contact, error)
	List(db *gorm.DB, filter ContactFilter) ([]models.Contact, int64, error)
	Update(db *gorm.DB, contact *models.Contact) error
	MarkDeleted(db *gorm.DB, id string) error
	HardDelete(db *gorm.DB, id string) error
	FindMarkedDeleted(db *gorm.DB) ([]models.Contact, error)
}

type contactRepository struct{}

func NewContactRepository() ContactRepository {
	return &contactRepository{}
}

func (r *contactRepository) Create(db *gorm.DB, contact *models.Contact) error {
	return db.Create(contact).Error
}

func (r *contactRepository) FindByID(db *gorm.DB, id string) (*models.Contact, error) {
	var contact models.Contact
	if err := db.First(&contact, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, err
	}
	return &contact, nil
}

func (r *contactRepository) List(db *gorm.DB, filter ContactFilter) ([]models.Contact, int64, error) {
	query := db.Model(&models.Contact{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var contacts []models.Contact
	err := query.Order("created_at desc").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&contacts).Error
	return contacts, total, err
}

func (r *contactRepository) Update(db *gorm.DB, contact *models.Contact) error {
	return db.Save(contact).Error
}

func (r *contactRepository) MarkDeleted(db *gorm.DB, id string) error {
	result := db.Delete(&models.Contact{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContactNotFound
	}
	return nil
}

func (r *contactRepository) HardDelete(db *gorm.DB, id string) error {
	return db.Unscoped().Delete(&models.Contact{}, "id = ?", id).Error
}

func (r *contactRepository) FindMarkedDeleted(db *gorm.DB) ([]models.Contact, error) {
	var contacts []models.Contact
	err := db.Unscoped().Where("deleted_at IS NOT NULL").Find(&contacts).Error
	return contacts, err
}
