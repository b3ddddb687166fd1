package services

import (
	"errors"

	"landscaping_backend/internal/dto"
	"landscaping_backend/internal/models"
	"landscaping_backend/internal/repositories"
	"landscaping_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type TestimonialService interface {
	Create(db *gorm.DB, req dto.CreateTestimonialRequest) (*models.Testimonial, error)
	GetByID(db *gorm.DB, id string) (*models.Testimonial, error)
	ListApproved(db *gorm.DB, query dto.TestimonialListQuery) ([]models.Testimonial, error)
	ListAll(db *gorm.DB, query dto.TestimonialAdminQuery) ([]models.Testimonial, int64, error)
	Update(db *gorm.DB, id string, req dto.UpdateTestimonialRequest) (*models.Testimonial, error)
	Delete(db *gorm.DB, id string) error
}

type testimonialService struct {
	testimonialRepo repositories.TestimonialRepository
}

func NewTestimonialService(testimonialRepo repositories.TestimonialRepository) TestimonialService {
	return &testimonialService{testimonialRepo: testimonialRepo}
}

// Create stores the submission as pending. It stays invisible to the public
// listing until staff approves it.
func (s *testimonialService) Create(db *gorm.DB, req dto.CreateTestimonialRequest) (*models.Testimonial, error) {
	testimonial := &models.Testimonial{
		Name:      req.Name,
		Email:     req.Email,
		Content:   req.Content,
		Rating:    req.Rating,
		ProjectID: req.ProjectID,
		Avatar:    req.Avatar,
		Location:  req.Location,
		Status:    models.TestimonialStatusPending,
	}
	if testimonial.Rating == 0 {
		testimonial.Rating = 5
	}

	if err := s.testimonialRepo.Create(db, testimonial); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return testimonial, nil
}

func (s *testimonialService) GetByID(db *gorm.DB, id string) (*models.Testimonial, error) {
	testimonial, err := s.testimonialRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTestimonialNotFound) {
			return nil, apperrors.ErrNotFound(err, "testimonial", "Testimonial not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return testimonial, nil
}

// publicTestimonialPageSize caps the public listing when no limit is given.
const publicTestimonialPageSize = 10

func (s *testimonialService) ListApproved(db *gorm.DB, query dto.TestimonialListQuery) ([]models.Testimonial, error) {
	filter := repositories.TestimonialFilter{
		Status:       string(models.TestimonialStatusApproved),
		FeaturedOnly: query.Featured == "true",
		Page:         1,
		Limit:        query.Limit,
	}
	if filter.Limit < 1 {
		filter.Limit = publicTestimonialPageSize
	}

	testimonials, _, err := s.testimonialRepo.List(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return testimonials, nil
}

func (s *testimonialService) ListAll(db *gorm.DB, query dto.TestimonialAdminQuery) ([]models.Testimonial, int64, error) {
	filter := repositories.TestimonialFilter{
		Status: query.Status,
		Page:   query.Page,
		Limit:  query.Limit,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	testimonials, total, err := s.testimonialRepo.List(db, filter)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return testimonials, total, nil
}

func (s *testimonialService) Update(db *gorm.DB, id string, req dto.UpdateTestimonialRequest) (*models.Testimonial, error) {
	testimonial, err := s.GetByID(db, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		next := models.TestimonialStatus(*req.Status)
		if !testimonial.Status.CanTransitionTo(next) {
			return nil, apperrors.ErrInvalidStatus("testimonial", "Cannot change testimonial status from "+string(testimonial.Status)+" to "+string(next))
		}
		testimonial.Status = next
	}
	if req.Featured != nil {
		testimonial.Featured = *req.Featured
	}

	if err := s.testimonialRepo.Update(db, testimonial); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return testimonial, nil
}

func (s *testimonialService) Delete(db *gorm.DB, id string) error {
	if err := s.testimonialRepo.Delete(db, id); err != nil {
		if errors.Is(err, repositories.ErrTestimonialNotFound) {
			return apperrors.ErrNotFound(err, "testimonial", "Testimonial not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}
