package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/yukikurage/blog/internal/constants"
)

// Error codes. Form and login failures are shown on the form itself and
// never reach an error page.
const (
	// Authorization errors
	ErrCodeForbidden = "FORBIDDEN"

	// Resource errors
	ErrCodeNotFound = "NOT_FOUND"

	// Service errors
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// errorTemplate renders every APIError for HTML clients
const errorTemplate = "error.html"

// APIError represents a standardized error response
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new APIError
func NewAPIError(code, message string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
	}
}

// RespondWithError sends an error page, or JSON when the client prefers it,
// and aborts the handler chain. The page shows the logged-in user once the
// session has been resolved for the request.
func RespondWithError(c *gin.Context, statusCode int, err *APIError) {
	err.Status = statusCode

	data := gin.H{
		"Title": http.StatusText(statusCode),
		"Error": err,
	}
	if user, ok := c.Get(constants.ContextKeyCurrentUser); ok && user != nil {
		data["CurrentUser"] = user
	}

	c.Negotiate(statusCode, gin.Negotiate{
		Offered:  []string{binding.MIMEHTML, binding.MIMEJSON},
		HTMLName: errorTemplate,
		HTMLData: data,
		JSONData: err,
	})
	c.Abort()
}

// Helper functions for common error responses

// Forbidden sends a 403 response
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "Access denied"
	}
	RespondWithError(c, http.StatusForbidden, NewAPIError(ErrCodeForbidden, message))
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	RespondWithError(c, http.StatusNotFound, NewAPIError(ErrCodeNotFound, message))
}

// InternalError sends a 500 response
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	RespondWithError(c, http.StatusInternalServerError, NewAPIError(ErrCodeInternalError, message))
}
