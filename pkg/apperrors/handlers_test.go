package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderError(t *testing.T, h *GinErrorHandler, err error) (int, ErrorEnvelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	h.HandleGinError(c, err)

	var envelope ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return rec.Code, envelope
}

func TestHandleGinErrorNotFound(t *testing.T) {
	code, envelope := renderError(t, &GinErrorHandler{}, ErrNotFound(nil, "project", "Project not found"))

	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, envelope.Success)
	assert.Equal(t, "Project not found", envelope.Error)
	assert.Empty(t, envelope.Errors)
}

func TestHandleGinErrorValidationCarriesSortedFieldErrors(t *testing.T) {
	err := ValidationError(map[string]string{
		"name":  "This field is required",
		"email": "Must be a valid email address",
	})
	code, envelope := renderError(t, &GinErrorHandler{}, err)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, envelope.Success)
	require.Len(t, envelope.Errors, 2)
	assert.Equal(t, FieldError{Field: "email", Message: "Must be a valid email address"}, envelope.Errors[0])
	assert.Equal(t, FieldError{Field: "name", Message: "This field is required"}, envelope.Errors[1])
}

func TestHandleGinErrorConflictMapsToBadRequest(t *testing.T) {
	code, envelope := renderError(t, &GinErrorHandler{}, ErrConflict(nil, "category", "A category with this name already exists"))

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "A category with this name already exists", envelope.Error)
}

func TestHandleGinErrorHidesInternalDetail(t *testing.T) {
	cause := errors.New("pq: connection refused")

	code, envelope := renderError(t, &GinErrorHandler{}, InternalError(cause))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Internal server error", envelope.Error)

	_, debugEnvelope := renderError(t, &GinErrorHandler{Debug: true}, InternalError(cause))
	assert.Equal(t, "pq: connection refused", debugEnvelope.Error)
}

func TestHandleGinErrorWrapsUnknownErrors(t *testing.T) {
	code, envelope := renderError(t, &GinErrorHandler{}, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.False(t, envelope.Success)
	assert.Equal(t, "Internal server error", envelope.Error)
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(cause, CodeNotFound, "contact", "Contact not found", http.StatusNotFound)

	assert.True(t, Is(err, cause))

	var appErr *AppError
	assert.True(t, As(err, &appErr))
	assert.Equal(t, CodeNotFound, appErr.Code)
}
