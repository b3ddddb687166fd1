package services

import (
	"context"
	"errors"
	"mime/multipart"
	"time"

	"landscaping_backend/internal/dto"
	"landscaping_backend/internal/logger"
	"landscaping_backend/internal/models"
	"landscaping_backend/internal/repositories"
	"landscaping_backend/internal/storage"
	"landscaping_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxProjectImages = 10

type ProjectService interface {
	Create(db *gorm.DB, creatorID string, req dto.CreateProjectRequest, images []*multipart.FileHeader) (*models.Project, error)
	GetByID(db *gorm.DB, id string) (*models.Project, error)
	GetBySlug(db *gorm.DB, slug string) (*models.Project, error)
	List(db *gorm.DB, query dto.ProjectListQuery, includeUnpublished bool) ([]models.Project, int64, error)
	Update(db *gorm.DB, id string, req dto.UpdateProjectRequest, images []*multipart.FileHeader) (*models.Project, error)
	AddImages(db *gorm.DB, id string, images []*multipart.FileHeader) (*models.Project, error)
	RemoveImage(db *gorm.DB, id, imageID string) (*models.Project, error)
	Delete(db *gorm.DB, id string) error
	SweepDeleted(db *gorm.DB) error
}

type projectService struct {
	projectRepo  repositories.ProjectRepository
	categoryRepo repositories.CategoryRepository
	store        storage.Storage
	limits       UploadLimits
}

func NewProjectService(projectRepo repositories.ProjectRepository, categoryRepo repositories.CategoryRepository, store storage.Storage, limits UploadLimits) ProjectService {
	limits.MaxFiles = maxProjectImages
	return &projectService{
		projectRepo:  projectRepo,
		categoryRepo: categoryRepo,
		store:        store,
		limits:       limits,
	}
}

func (s *projectService) Create(db *gorm.DB, creatorID string, req dto.CreateProjectRequest, images []*multipart.FileHeader) (*models.Project, error) {
	if _, err := s.categoryRepo.FindByID(db, req.CategoryID); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.NewBadRequestError("Category does not exist")
		}
		return nil, apperrors.InternalError(err)
	}

	ctx := db.Statement.Context
	stored, err := storeFiles(ctx, s.store, "projects", images, s.limits)
	if err != nil {
		return nil, uploadError(err)
	}

	now := time.Now()
	project := &models.Project{
		Title:            req.Title,
		Slug:             models.ProjectSlug(req.Title, now),
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		CategoryID:       req.CategoryID,
		Images:           markFirstFeatured(projectImagesFromStored(stored)),
		Location:         req.Location,
		Client:           req.Client,
		Status:           models.ProjectStatusCompleted,
		Featured:         req.Featured,
		Tags:             req.Tags,
		CreatedByID:      creatorID,
		IsPublished:      true,
	}
	if req.Status != "" {
		project.Status = models.ProjectStatus(req.Status)
	}
	if req.IsPublished != nil {
		project.IsPublished = *req.IsPublished
	}
	if req.CompletionDate != "" {
		if date, err := time.Parse("2006-01-02", req.CompletionDate); err == nil {
			project.CompletionDate = &date
		}
	}

	if err := s.projectRepo.Create(db, project); err != nil {
		_ = deleteStoredObjects(ctx, s.store, projectImageKeys(project.Images))
		return nil, apperrors.InternalError(err)
	}

	return s.GetByID(db, project.ID)
}

func (s *projectService) GetByID(db *gorm.DB, id string) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrNotFound(err, "project", "Project not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return project, nil
}

func (s *projectService) GetBySlug(db *gorm.DB, slug string) (*models.Project, error) {
	project, err := s.projectRepo.FindBySlug(db, slug)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrNotFound(err, "project", "Project not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return project, nil
}

func (s *projectService) List(db *gorm.DB, query dto.ProjectListQuery, includeUnpublished bool) ([]models.Project, int64, error) {
	filter := repositories.ProjectFilter{
		Status:        query.Status,
		FeaturedOnly:  query.Featured == "true",
		PublishedOnly: !includeUnpublished,
		Search:        query.Search,
		Page:          query.Page,
		Limit:         query.Limit,
	}
	if query.Category != "" {
		category, err := s.categoryRepo.FindByID(db, query.Category)
		if err != nil {
			if errors.Is(err, repositories.ErrCategoryNotFound) {
				return []models.Project{}, 0, nil
			}
			return nil, 0, apperrors.InternalError(err)
		}
		filter.CategorySlug = category.Slug
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	projects, total, err := s.projectRepo.List(db, filter)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return projects, total, nil
}

// Update merges the provided fields and appends any uploaded images to the
// project, subject to the total image cap.
func (s *projectService) Update(db *gorm.DB, id string, req dto.UpdateProjectRequest, images []*multipart.FileHeader) (*models.Project, error) {
	project, err := s.GetByID(db, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil && *req.Title != project.Title {
		project.Title = *req.Title
		project.Slug = models.ProjectSlug(*req.Title, time.Now())
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.ShortDescription != nil {
		project.ShortDescription = *req.ShortDescription
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(db, *req.CategoryID); err != nil {
			if errors.Is(err, repositories.ErrCategoryNotFound) {
				return nil, apperrors.NewBadRequestError("Category does not exist")
			}
			return nil, apperrors.InternalError(err)
		}
		project.CategoryID = *req.CategoryID
	}
	if req.Location != nil {
		project.Location = *req.Location
	}
	if req.Client != nil {
		project.Client = *req.Client
	}
	if req.CompletionDate != nil {
		if *req.CompletionDate == "" {
			project.CompletionDate = nil
		} else if date, err := time.Parse("2006-01-02", *req.CompletionDate); err == nil {
			project.CompletionDate = &date
		}
	}
	if req.Status != nil {
		next := models.ProjectStatus(*req.Status)
		if !project.Status.CanTransitionTo(next) {
			return nil, apperrors.ErrInvalidStatus("project", "Cannot change project status from "+string(project.Status)+" to "+string(next))
		}
		project.Status = next
	}
	if req.Featured != nil {
		project.Featured = *req.Featured
	}
	if req.Tags != nil {
		project.Tags = req.Tags
	}
	if req.IsPublished != nil {
		project.IsPublished = *req.IsPublished
	}

	var stored []storedFile
	if len(images) > 0 {
		if len(project.Images)+len(images) > maxProjectImages {
			return nil, apperrors.ErrTooManyFiles
		}
		stored, err = storeFiles(db.Statement.Context, s.store, "projects", images, s.limits)
		if err != nil {
			return nil, uploadError(err)
		}
		project.Images = append(project.Images, projectImagesFromStored(stored)...)
	}

	if err := s.projectRepo.Update(db, project); err != nil {
		_ = deleteStoredObjects(db.Statement.Context, s.store, storedKeys(stored))
		return nil, apperrors.InternalError(err)
	}
	return s.GetByID(db, project.ID)
}

func (s *projectService) AddImages(db *gorm.DB, id string, images []*multipart.FileHeader) (*models.Project, error) {
	project, err := s.GetByID(db, id)
	if err != nil {
		return nil, err
	}

	if len(project.Images)+len(images) > maxProjectImages {
		return nil, apperrors.ErrTooManyFiles
	}

	ctx := db.Statement.Context
	stored, err := storeFiles(ctx, s.store, "projects", images, s.limits)
	if err != nil {
		return nil, uploadError(err)
	}

	project.Images = append(project.Images, projectImagesFromStored(stored)...)
	if err := s.projectRepo.Update(db, project); err != nil {
		_ = deleteStoredObjects(ctx, s.store, storedKeys(stored))
		return nil, apperrors.InternalError(err)
	}
	return project, nil
}

func (s *projectService) RemoveImage(db *gorm.DB, id, imageID string) (*models.Project, error) {
	project, err := s.GetByID(db, id)
	if err != nil {
		return nil, err
	}

	index := -1
	for i := range project.Images {
		if project.Images[i].ID == imageID {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, apperrors.ErrNotFound(nil, "project", "Image not found")
	}

	removed := project.Images[index]
	project.Images = append(project.Images[:index], project.Images[index+1:]...)
	if err := s.projectRepo.Update(db, project); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if removed.StorageID != "" {
		if err := s.store.Delete(db.Statement.Context, removed.StorageID); err != nil {
			logger.CtxWarn(db.Statement.Context, "failed to delete project image from storage",
				"project_id", id, "storage_id", removed.StorageID, "error", err)
		}
	}
	return project, nil
}

// Delete marks the project, sweeps its stored images, and removes the row
// only after the sweep succeeds. A failed sweep leaves the marked row for the
// cleanup worker to retry.
func (s *projectService) Delete(db *gorm.DB, id string) error {
	project, err := s.GetByID(db, id)
	if err != nil {
		return err
	}

	if err := s.projectRepo.MarkDeleted(db, id); err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return apperrors.ErrNotFound(err, "project", "Project not found")
		}
		return apperrors.InternalError(err)
	}

	ctx := db.Statement.Context
	if err := deleteStoredObjects(ctx, s.store, projectImageKeys(project.Images)); err != nil {
		logger.CtxWarn(ctx, "project storage sweep failed, row left for cleanup",
			"project_id", id, "error", err)
		return nil
	}

	if err := s.projectRepo.HardDelete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// SweepDeleted retries the storage sweep for rows whose delete stalled.
func (s *projectService) SweepDeleted(db *gorm.DB) error {
	projects, err := s.projectRepo.FindMarkedDeleted(db)
	if err != nil {
		return err
	}

	ctx := db.Statement.Context
	if ctx == nil {
		ctx = context.Background()
	}
	for _, project := range projects {
		if err := deleteStoredObjects(ctx, s.store, projectImageKeys(project.Images)); err != nil {
			logger.CtxWarn(ctx, "project storage sweep retry failed", "project_id", project.ID, "error", err)
			continue
		}
		if err := s.projectRepo.HardDelete(db, project.ID); err != nil {
			logger.CtxWarn(ctx, "failed to remove swept project row", "project_id", project.ID, "error", err)
		}
	}
	return nil
}

func projectImagesFromStored(stored []storedFile) []models.ProjectImage {
	out := make([]models.ProjectImage, 0, len(stored))
	for _, f := range stored {
		out = append(out, models.ProjectImage{
			ID:        uuid.NewString(),
			URL:       f.URL,
			StorageID: f.Key,
		})
	}
	return out
}

func markFirstFeatured(images []models.ProjectImage) []models.ProjectImage {
	if len(images) > 0 {
		images[0].IsFeatured = true
	}
	return images
}

func projectImageKeys(images []models.ProjectImage) []string {
	keys := make([]string, 0, len(images))
	for _, img := range images {
		keys = append(keys, img.StorageID)
	}
	return keys
}

func storedKeys(stored []storedFile) []string {
	keys := make([]string, 0, len(stored))
	for _, f := range stored {
		keys = append(keys, f.Key)
	}
	return keys
}

// uploadError passes AppErrors through and wraps anything else as internal.
func uploadError(err error) error {
	if _, ok := apperrors.AsAppError(err); ok {
		return err
	}
	return apperrors.InternalError(err)
}
