package apperrors

import (
	"sort"

	"github.com/gin-gonic/gin"
)

// FieldError is one entry of the `errors` array in the failure envelope.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorEnvelope is the uniform failure response body. The frontend state
// stores branch on `success`, so every error path must produce this shape.
type ErrorEnvelope struct {
	Success bool         `json:"success"`
	Error   string       `json:"error"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// GinErrorHandler renders AppErrors as failure envelopes.
type GinErrorHandler struct {
	// Debug keeps underlying error text in 5xx responses. Off in production.
	Debug bool
}

var defaultHandler = &GinErrorHandler{}

// SetDebug configures the package-level handler (called once at startup).
func SetDebug(debug bool) {
	defaultHandler.Debug = debug
}

// HandleError renders err through the package-level handler.
func HandleError(c *gin.Context, err error) {
	defaultHandler.HandleGinError(c, err)
}

// HandleGinError translates any error into the failure envelope. Non-AppErrors
// become generic 500s; their text leaks only in debug mode.
func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	envelope := ErrorEnvelope{
		Success: false,
		Error:   appErr.Message,
		Errors:  fieldErrors(appErr),
	}

	if appErr.HTTPCode >= 500 {
		if h.Debug && appErr.Err != nil {
			envelope.Error = appErr.Err.Error()
		} else {
			envelope.Error = "Internal server error"
		}
	}

	c.AbortWithStatusJSON(appErr.HTTPCode, envelope)
}

// AsAppError extracts an *AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// fieldErrors flattens validator details into the envelope's errors array,
// sorted by field so responses are stable.
func fieldErrors(appErr *AppError) []FieldError {
	fields, ok := appErr.Details.(map[string]string)
	if !ok || len(fields) == 0 {
		return nil
	}

	out := make([]FieldError, 0, len(fields))
	for field, msg := range fields {
		out = append(out, FieldError{Field: field, Message: msg})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}
