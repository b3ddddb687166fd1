package services

import (
	"testing"

	"landscaping_backend/internal/dto"
	"landscaping_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTestimonial(repo *fakeTestimonialRepo, id string, status models.TestimonialStatus) *models.Testimonial {
	testimonial := &models.Testimonial{
		BaseModel: models.BaseModel{ID: id},
		Name:      "Cliente " + id,
		Content:   "Excelente trabajo",
		Rating:    5,
		Status:    status,
	}
	repo.testimonials[id] = testimonial
	return testimonial
}

func TestTestimonialCreateForcesPendingStatus(t *testing.T) {
	repo := newFakeTestimonialRepo()
	service := NewTestimonialService(repo)

	created, err := service.Create(testDB(), dto.CreateTestimonialRequest{
		Name:    "María",
		Content: "Transformaron mi jardín",
	})
	require.NoError(t, err)

	assert.Equal(t, models.TestimonialStatusPending, created.Status)
	assert.Equal(t, 5, created.Rating, "rating defaults to 5")
}

func TestTestimonialListApprovedOnly(t *testing.T) {
	repo := newFakeTestimonialRepo()
	seedTestimonial(repo, "t1", models.TestimonialStatusApproved)
	seedTestimonial(repo, "t2", models.TestimonialStatusPending)
	seedTestimonial(repo, "t3", models.TestimonialStatusRejected)
	service := NewTestimonialService(repo)

	testimonials, err := service.ListApproved(testDB(), dto.TestimonialListQuery{})
	require.NoError(t, err)

	require.Len(t, testimonials, 1)
	assert.Equal(t, "t1", testimonials[0].ID)
}

func TestTestimonialListApprovedDefaultLimit(t *testing.T) {
	repo := newFakeTestimonialRepo()
	service := NewTestimonialService(repo)

	_, err := service.ListApproved(testDB(), dto.TestimonialListQuery{})
	require.NoError(t, err)
	assert.Equal(t, publicTestimonialPageSize, repo.lastFilter.Limit)

	_, err = service.ListApproved(testDB(), dto.TestimonialListQuery{Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, repo.lastFilter.Limit)
}

func TestTestimonialModerationTransition(t *testing.T) {
	repo := newFakeTestimonialRepo()
	seedTestimonial(repo, "t1", models.TestimonialStatusPending)
	service := NewTestimonialService(repo)

	status := string(models.TestimonialStatusApproved)
	updated, err := service.Update(testDB(), "t1", dto.UpdateTestimonialRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.TestimonialStatusApproved, updated.Status)
}
