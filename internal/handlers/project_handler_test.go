package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"landscaping_backend/internal/dto"
	"landscaping_backend/internal/models"
	"landscaping_backend/internal/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// stubProjectService records calls and returns canned results.
type stubProjectService struct {
	project      *models.Project
	updatedReq   *dto.UpdateProjectRequest
	updateImages []*multipart.FileHeader
}

func (s *stubProjectService) Create(db *gorm.DB, creatorID string, req dto.CreateProjectRequest, images []*multipart.FileHeader) (*models.Project, error) {
	return s.project, nil
}

func (s *stubProjectService) GetByID(db *gorm.DB, id string) (*models.Project, error) {
	return s.project, nil
}

func (s *stubProjectService) GetBySlug(db *gorm.DB, slug string) (*models.Project, error) {
	return s.project, nil
}

func (s *stubProjectService) List(db *gorm.DB, query dto.ProjectListQuery, includeUnpublished bool) ([]models.Project, int64, error) {
	return []models.Project{*s.project}, 1, nil
}

func (s *stubProjectService) Update(db *gorm.DB, id string, req dto.UpdateProjectRequest, images []*multipart.FileHeader) (*models.Project, error) {
	s.updatedReq = &req
	s.updateImages = images
	return s.project, nil
}

func (s *stubProjectService) AddImages(db *gorm.DB, id string, images []*multipart.FileHeader) (*models.Project, error) {
	return s.project, nil
}

func (s *stubProjectService) RemoveImage(db *gorm.DB, id, imageID string) (*models.Project, error) {
	return s.project, nil
}

func (s *stubProjectService) Delete(db *gorm.DB, id string) error { return nil }

func (s *stubProjectService) SweepDeleted(db *gorm.DB) error { return nil }

func sampleProject() *models.Project {
	return &models.Project{
		BaseModelWithDeleted: models.BaseModelWithDeleted{
			BaseModel: models.BaseModel{ID: "p1"},
		},
		Title:       "Patio",
		Slug:        "patio-abc",
		CategoryID:  "cat-1",
		Status:      models.ProjectStatusCompleted,
		IsPublished: true,
	}
}

func TestProjectUpdateForwardsUploadedImages(t *testing.T) {
	stub := &stubProjectService{project: sampleProject()}
	router := testRouter()
	h := NewProjectHandler(NewBaseHandler(validator.New()), stub)
	router.PUT("/api/projects/:id", h.Update)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.WriteField("client", "Acme"))
	part, err := w.CreateFormFile("images", "patio.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPut, "/api/projects/p1", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, stub.updatedReq)
	require.NotNil(t, stub.updatedReq.Client)
	assert.Equal(t, "Acme", *stub.updatedReq.Client)
	require.Len(t, stub.updateImages, 1, "uploaded files must reach the service")
	assert.Equal(t, "patio.jpg", stub.updateImages[0].Filename)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Success)
}

func TestProjectUpdateWithoutFiles(t *testing.T) {
	stub := &stubProjectService{project: sampleProject()}
	router := testRouter()
	h := NewProjectHandler(NewBaseHandler(validator.New()), stub)
	router.PUT("/api/projects/:id", h.Update)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.WriteField("location", "Monterrey"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPut, "/api/projects/p1", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, stub.updatedReq)
	assert.Empty(t, stub.updateImages)
}
