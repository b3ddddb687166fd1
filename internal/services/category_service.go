package services

import (
	"errors"

	"landscaping_backend/internal/dto"
	"landscaping_backend/internal/models"
	"landscaping_backend/internal/repositories"
	"landscaping_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type CategoryService interface {
	Create(db *gorm.DB, req dto.CreateCategoryRequest) (*models.Category, error)
	GetByID(db *gorm.DB, id string) (*models.Category, error)
	GetBySlug(db *gorm.DB, slug string) (*models.Category, error)
	ListActive(db *gorm.DB) ([]models.Category, error)
	ListAll(db *gorm.DB) ([]models.Category, error)
	Update(db *gorm.DB, id string, req dto.UpdateCategoryRequest) (*models.Category, error)
	Delete(db *gorm.DB, id string) error
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
	projectRepo  repositories.ProjectRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, projectRepo repositories.ProjectRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo, projectRepo: projectRepo}
}

func (s *categoryService) Create(db *gorm.DB, req dto.CreateCategoryRequest) (*models.Category, error) {
	category := &models.Category{
		Name:        req.Name,
		Slug:        models.CategorySlug(req.Name),
		Description: req.Description,
		Icon:        req.Icon,
		IsActive:    true,
	}
	if category.Icon == "" {
		category.Icon = "leaf"
	}

	if err := s.categoryRepo.Create(db, category); err != nil {
		if errors.Is(err, repositories.ErrCategoryAlreadyExists) {
			return nil, apperrors.ErrConflict(err, "category", "A category with this name already exists")
		}
		return nil, apperrors.InternalError(err)
	}

	return category, nil
}

func (s *categoryService) GetByID(db *gorm.DB, id string) (*models.Category, error) {
	category, err := s.categoryRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.ErrNotFound(err, "category", "Category not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return category, nil
}

func (s *categoryService) GetBySlug(db *gorm.DB, slug string) (*models.Category, error) {
	category, err := s.categoryRepo.FindBySlug(db, slug)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.ErrNotFound(err, "category", "Category not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return category, nil
}

func (s *categoryService) ListActive(db *gorm.DB) ([]models.Category, error) {
	categories, err := s.categoryRepo.FindActive(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return categories, nil
}

func (s *categoryService) ListAll(db *gorm.DB) ([]models.Category, error) {
	categories, err := s.categoryRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return categories, nil
}

func (s *categoryService) Update(db *gorm.DB, id string, req dto.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.GetByID(db, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != category.Name {
		category.Name = *req.Name
		category.Slug = models.CategorySlug(*req.Name)
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.categoryRepo.Update(db, category); err != nil {
		if errors.Is(err, repositories.ErrCategoryAlreadyExists) {
			return nil, apperrors.ErrConflict(err, "category", "A category with this name already exists")
		}
		return nil, apperrors.InternalError(err)
	}

	return category, nil
}

// Delete refuses while projects still reference the category.
func (s *categoryService) Delete(db *gorm.DB, id string) error {
	if _, err := s.GetByID(db, id); err != nil {
		return err
	}

	count, err := s.projectRepo.CountByCategory(db, id)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if count > 0 {
		return apperrors.ErrInvalidOperation("category", "Cannot delete a category that still has projects")
	}

	if err := s.categoryRepo.Delete(db, id); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return apperrors.ErrNotFound(err, "category", "Category not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}
