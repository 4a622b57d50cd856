package analyses

import (
	"errors"
	"net/http"
)

// Domain errors for analysis operations.
var (
	ErrNotFound         = errors.New("analysis not found")
	ErrDuplicate        = errors.New("analysis already exists")
	ErrEmptyText        = errors.New("text is empty")
	ErrInvalidID        = errors.New("invalid analysis id")
	ErrInvalidBody      = errors.New("invalid request body")
	ErrBodyTooLarge     = errors.New("request body exceeds maximum size")
	ErrNoCriteria       = errors.New("search requires at least one criterion")
	ErrInvalidSentiment = errors.New("invalid sentiment")
)

// MapHTTPStatus maps analysis domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrBodyTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	if errors.Is(err, ErrEmptyText) ||
		errors.Is(err, ErrInvalidID) ||
		errors.Is(err, ErrInvalidBody) ||
		errors.Is(err, ErrNoCriteria) ||
		errors.Is(err, ErrInvalidSentiment) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
