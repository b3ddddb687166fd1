package handlers

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"landscaping_backend/internal/dto"
	"landscaping_backend/internal/models"
	"landscaping_backend/internal/validator"
	"landscaping_backend/pkg/apperrors"
	"landscaping_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// stubContactService records calls and returns canned results.
type stubContactService struct {
	created    *models.Contact
	createErr  error
	createdReq *dto.CreateContactRequest
	contact    *models.Contact
	getErr     error
	updated    *models.Contact
	updateErr  error
}

func (s *stubContactService) Create(db *gorm.DB, req dto.CreateContactRequest, attachments []*multipart.FileHeader) (*models.Contact, error) {
	s.createdReq = &req
	return s.created, s.createErr
}

func (s *stubContactService) GetByID(db *gorm.DB, id string) (*models.Contact, error) {
	return s.contact, s.getErr
}

func (s *stubContactService) List(db *gorm.DB, query dto.ContactListQuery) ([]models.Contact, int64, error) {
	return []models.Contact{*s.contact}, 1, nil
}

func (s *stubContactService) Update(db *gorm.DB, id string, req dto.UpdateContactRequest) (*models.Contact, error) {
	return s.updated, s.updateErr
}

func (s *stubContactService) Delete(db *gorm.DB, id string) error { return nil }

func (s *stubContactService) SweepDeleted(db *gorm.DB) error { return nil }

// testRouter injects a request-scoped DB handle the way DBMiddleware does.
func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(string(contextkeys.DBContextKey), &gorm.DB{Config: &gorm.Config{}})
		c.Next()
	})
	return router
}

type envelope struct {
	Success    bool                   `json:"success"`
	Data       json.RawMessage        `json:"data"`
	Message    string                 `json:"message"`
	Error      string                 `json:"error"`
	Errors     []apperrors.FieldError `json:"errors"`
	Pagination *Pagination            `json:"pagination"`
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body string, contentType string) (int, envelope) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "body: %s", rec.Body.String())
	return rec.Code, env
}

func sampleContact() *models.Contact {
	return &models.Contact{
		BaseModelWithDeleted: models.BaseModelWithDeleted{
			BaseModel: models.BaseModel{ID: "c1"},
		},
		Name:    "María",
		Email:   "maria@example.com",
		Message: "Hola",
		Status:  models.ContactStatusNew,
	}
}

func TestContactCreateSuccessEnvelope(t *testing.T) {
	stub := &stubContactService{created: sampleContact()}
	router := testRouter()
	h := NewContactHandler(NewBaseHandler(validator.New()), stub)
	router.POST("/api/contact", h.Create)

	form := url.Values{
		"name":    {"María"},
		"email":   {"maria@example.com"},
		"message": {"Hola"},
	}
	code, env := doRequest(t, router, http.MethodPost, "/api/contact", form.Encode(), "application/x-www-form-urlencoded")

	assert.Equal(t, http.StatusCreated, code)
	assert.True(t, env.Success)
	require.NotNil(t, stub.createdReq)
	assert.Equal(t, "María", stub.createdReq.Name)

	var contact models.Contact
	require.NoError(t, json.Unmarshal(env.Data, &contact))
	assert.Equal(t, "c1", contact.ID)
}

func TestContactCreateValidationFailureSkipsService(t *testing.T) {
	stub := &stubContactService{created: sampleContact()}
	router := testRouter()
	h := NewContactHandler(NewBaseHandler(validator.New()), stub)
	router.POST("/api/contact", h.Create)

	form := url.Values{"email": {"not-an-email"}}
	code, env := doRequest(t, router, http.MethodPost, "/api/contact", form.Encode(), "application/x-www-form-urlencoded")

	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, env.Success)
	assert.Nil(t, stub.createdReq, "service must not be called on validation failure")

	fields := make(map[string]string)
	for _, fe := range env.Errors {
		fields[fe.Field] = fe.Message
	}
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "message")
}

func TestContactUpdateInvalidTransitionEnvelope(t *testing.T) {
	stub := &stubContactService{
		updateErr: apperrors.ErrInvalidStatus("contact", "Cannot change contact status from archived to read"),
	}
	router := testRouter()
	h := NewContactHandler(NewBaseHandler(validator.New()), stub)
	router.PUT("/api/contact/:id", h.Update)

	code, env := doRequest(t, router, http.MethodPut, "/api/contact/c1", `{"status":"read"}`, "application/json")

	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "archived")
}

func TestContactGetNotFoundEnvelope(t *testing.T) {
	stub := &stubContactService{getErr: apperrors.ErrNotFound(nil, "contact", "Contact not found")}
	router := testRouter()
	h := NewContactHandler(NewBaseHandler(validator.New()), stub)
	router.GET("/api/contact/:id", h.Get)

	code, env := doRequest(t, router, http.MethodGet, "/api/contact/missing", "", "")

	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, env.Success)
	assert.Equal(t, "Contact not found", env.Error)
}

func TestContactListPaginationEnvelope(t *testing.T) {
	stub := &stubContactService{contact: sampleContact()}
	router := testRouter()
	h := NewContactHandler(NewBaseHandler(validator.New()), stub)
	router.GET("/api/contact/admin/all", h.List)

	code, env := doRequest(t, router, http.MethodGet, "/api/contact/admin/all?page=1&limit=20", "", "")

	assert.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)
	require.NotNil(t, env.Pagination)
	assert.Equal(t, 1, env.Pagination.Page)
	assert.Equal(t, 20, env.Pagination.Limit)
	assert.Equal(t, int64(1), env.Pagination.Total)
	assert.Equal(t, int64(1), env.Pagination.Pages)
}
