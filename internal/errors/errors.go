package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes
const (
	ErrCodeInvalidInput   = "INVALID_INPUT"
	ErrCodeMissingField   = "MISSING_FIELD"
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodeIntegrityFault = "INTEGRITY_FAULT"
	ErrCodeInternalError  = "INTERNAL_ERROR"
)

// APIError is the single fault envelope used across the whole surface.
type APIError struct {
	Code    string `json:"error"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new APIError
func NewAPIError(status int, code, message string) *APIError {
	return &APIError{
		Code:    code,
		Status:  status,
		Message: message,
	}
}

// RespondWithError sends an error response
func RespondWithError(c *gin.Context, err *APIError) {
	c.JSON(err.Status, err)
}

// Helper functions for common error responses

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	RespondWithError(c, NewAPIError(http.StatusBadRequest, ErrCodeInvalidInput, message))
}

// MissingField sends a 400 response for an absent field or query parameter
func MissingField(c *gin.Context, message string) {
	RespondWithError(c, NewAPIError(http.StatusBadRequest, ErrCodeMissingField, message))
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	RespondWithError(c, NewAPIError(http.StatusNotFound, ErrCodeNotFound, message))
}

// IntegrityFault sends a 500 response for a server-side data inconsistency.
// The client did not cause it and cannot resolve it.
func IntegrityFault(c *gin.Context, message string) {
	RespondWithError(c, NewAPIError(http.StatusInternalServerError, ErrCodeIntegrityFault, message))
}

// InternalError sends a 500 response
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	RespondWithError(c, NewAPIError(http.StatusInternalServerError, ErrCodeInternalError, message))
}

// EndpointNotFound is the catch-all for unmatched method+path combinations.
func EndpointNotFound(c *gin.Context) {
	NotFound(c, "Endpoint not found")
}
