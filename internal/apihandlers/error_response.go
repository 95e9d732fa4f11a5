package apihandlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lexitag/internal/models"
)

// APIError defines the standard error response.
// Example: { "error": { "code": "bad_request", "message": "Invalid column" } }
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error APIError `json:"error"`
}

// JSONError sends a structured error response.
func JSONError(ctx *gin.Context, status int, code, msg string) {
	ctx.JSON(status, errorResponse{Error: APIError{Code: code, Message: msg}})
}

// Convenience wrappers
func BadRequest(ctx *gin.Context, msg string) {
	JSONError(ctx, http.StatusBadRequest, "bad_request", msg)
}

func NotFound(ctx *gin.Context, msg string) {
	JSONError(ctx, http.StatusNotFound, "not_found", msg)
}

func Internal(ctx *gin.Context, msg string) {
	JSONError(ctx, http.StatusInternalServerError, "internal_error", msg)
}

// ServiceError maps sentinel service errors onto HTTP responses. Every
// error here is recoverable; the user corrects input and retries.
func ServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrValidation):
		BadRequest(ctx, err.Error())
	case errors.Is(err, models.ErrNotFound):
		NotFound(ctx, err.Error())
	case errors.Is(err, models.ErrMalformedCSV):
		BadRequest(ctx, err.Error()+"; please supply a valid CSV file with a header row")
	case errors.Is(err, models.ErrEmptyDictionary):
		BadRequest(ctx, "add at least one category with keywords before classifying")
	case errors.Is(err, models.ErrUnknownColumn):
		BadRequest(ctx, err.Error())
	case errors.Is(err, models.ErrNoDataset):
		BadRequest(ctx, "upload a dataset first")
	case errors.Is(err, models.ErrNotClassified):
		BadRequest(ctx, "classify the dataset first")
	case errors.Is(err, models.ErrSessionExpired):
		JSONError(ctx, http.StatusNotFound, "session_expired", "session expired or unknown; create a new one")
	default:
		Internal(ctx, err.Error())
	}
}
