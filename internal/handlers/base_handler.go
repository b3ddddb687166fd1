package handlers

import (
	"errors"

	"landscaping_backend/internal/middleware"
	"landscaping_backend/internal/validator"
	"landscaping_backend/pkg/apperrors"
	"landscaping_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// BaseHandler carries the pieces every handler needs.
type BaseHandler struct {
	validate *validator.Validator
}

func NewBaseHandler(validate *validator.Validator) BaseHandler {
	return BaseHandler{validate: validate}
}

// GetDB returns the request-scoped database handle placed by DBMiddleware.
func (h *BaseHandler) GetDB(c *gin.Context) (*gorm.DB, error) {
	value, exists := c.Get(string(contextkeys.DBContextKey))
	if !exists {
		return nil, apperrors.InternalError(errors.New("database handle missing from request context"))
	}
	db, ok := value.(*gorm.DB)
	if !ok {
		return nil, apperrors.InternalError(errors.New("invalid database handle in request context"))
	}
	return db, nil
}

// BindAndValidateJSON decodes the body and runs struct validation. Both
// failure modes surface as a 400 envelope with field errors when available.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}
	return h.runValidation(c, obj)
}

// BindAndValidateForm decodes multipart/urlencoded form fields.
func (h *BaseHandler) BindAndValidateForm(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBind(obj); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid form data"))
		return false
	}
	return h.runValidation(c, obj)
}

// BindAndValidateQuery decodes query string parameters.
func (h *BaseHandler) BindAndValidateQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters"))
		return false
	}
	return h.runValidation(c, obj)
}

func (h *BaseHandler) runValidation(c *gin.Context, obj interface{}) bool {
	if err := h.validate.Validate(obj); err != nil {
		var vErr *validator.ValidationError
		if errors.As(err, &vErr) {
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// HandleServiceError renders a service-layer error as a failure envelope.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
}

// CurrentUserID returns the authenticated caller's id.
func (h *BaseHandler) CurrentUserID(c *gin.Context) (string, error) {
	value, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		return "", apperrors.NewUnauthorizedError("Authentication required")
	}
	id, ok := value.(string)
	if !ok || id == "" {
		return "", apperrors.NewUnauthorizedError("Authentication required")
	}
	return id, nil
}

// NormalizePage clamps pagination inputs to sane bounds.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}
