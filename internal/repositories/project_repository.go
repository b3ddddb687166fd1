package repositories

import (
	"errors"
	"strings"

	"landscaping_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProjectNotFound = errors.New("project not found")

// ProjectFilter narrows the published-project listing. Empty fields are
// ignored.
type ProjectFilter struct {
	CategorySlug  string
	Status        string
	FeaturedOnly  bool
	PublishedOnly bool
	Search        string
	Page          int
	Limit         int
}

type ProjectRepository interface {
	Create(db *gorm.DB, project *models.Project) error
	FindByID(db *gorm.DB, id string) (*models.Project, error)
	FindBySlug(db *gorm.DB, slug string) (*models.Project, error)
	List(db *gorm.DB, filter ProjectFilter) ([]models.Project, int64, error)
	CountByCategory(db *gorm.DB, categoryID string) (int64, error)
	Update(db *gorm.DB, project *models.Project) error
	MarkDeleted(db *gorm.DB, id string) error
	HardDelete(db *gorm.DB, id string) error
	FindMarkedDeleted(db *gorm.DB) ([]models.Project, error)
}

type projectRepository struct{}

func NewProjectRepository() ProjectRepository {
	return &projectRepository{}
}

func (r *projectRepository) Create(db *gorm.DB, project *models.Project) error {
	return db.Create(project).Error
}

func (r *projectRepository) FindByID(db *gorm.DB, id string) (*models.Project, error) {
	var project models.Project
	if err := db.Preload("Category").First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) FindBySlug(db *gorm.DB, slug string) (*models.Project, error) {
	var project models.Project
	if err := db.Preload("Category").First(&project, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) List(db *gorm.DB, filter ProjectFilter) ([]models.Project, int64, error) {
	query := db.Model(&models.Project{})

	if filter.PublishedOnly {
		query = query.Where("is_published = ?", true)
	}
	if filter.CategorySlug != "" {
		query = query.Joins("JOIN categories ON categories.id = projects.category_id").
			Where("categories.slug = ?", filter.CategorySlug)
	}
	if filter.Status != "" {
		query = query.Where("projects.status = ?", filter.Status)
	}
	if filter.FeaturedOnly {
		query = query.Where("projects.featured = ?", true)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(projects.title) LIKE ? OR LOWER(projects.description) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []models.Project
	err := query.Preload("Category").
		Order("projects.created_at desc").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&projects).Error
	return projects, total, err
}

func (r *projectRepository) CountByCategory(db *gorm.DB, categoryID string) (int64, error) {
	var count int64
	err := db.Model(&models.Project{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

func (r *projectRepository) Update(db *gorm.DB, project *models.Project) error {
	return db.Save(project).Error
}

func (r *projectRepository) MarkDeleted(db *gorm.DB, id string) error {
	result := db.Delete(&models.Project{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

func (r *projectRepository) HardDelete(db *gorm.DB, id string) error {
	return db.Unscoped().Delete(&models.Project{}, "id = ?", id).Error
}

// FindMarkedDeleted returns rows whose storage sweep has not completed yet.
func (r *projectRepository) FindMarkedDeleted(db *gorm.DB) ([]models.Project, error) {
	var projects []models.Project
	err := db.Unscoped().Where("deleted_at IS NOT NULL").Find(&projects).Error
	return projects, err
}
