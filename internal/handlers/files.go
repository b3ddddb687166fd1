package handlers

import (
	"mime/multipart"
	"strconv"

	"landscaping_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// queryInt reads an integer query parameter, zero when absent or malformed.
func queryInt(c *gin.Context, name string) int {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return value
}

// formFiles returns the uploaded files under the given multipart field, or
// nil when the request carries no multipart body at all.
func formFiles(c *gin.Context, field string) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File[field]
}

// formFile returns the single uploaded file under the field, or nil.
func formFile(c *gin.Context, field string) *multipart.FileHeader {
	files := formFiles(c, field)
	if len(files) == 0 {
		return nil
	}
	return files[0]
}

func errNoFiles() error {
	return apperrors.NewBadRequestError("At least one file is required")
}
