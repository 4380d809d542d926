// internal/http/errors.go
package httpserver

import (
	"errors"
	"net/http"

	"gmao/internal/models"
)

// ErrorMessage maps domain errors to an HTTP status + user-facing message.
// Unknown errors return 500 with the provided fallback so internals never
// leak to the caller.
func ErrorMessage(err error, fallback string) (int, string) {
	var vErr *models.ValidationError
	if errors.As(err, &vErr) {
		return http.StatusBadRequest, vErr.Error()
	}
	var sErr *models.StorageError
	if errors.As(err, &sErr) {
		return http.StatusInternalServerError, "storage failure"
	}
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound, "record not found"
	case errors.Is(err, models.ErrConflict):
		return http.StatusConflict, "conflicting state"
	case errors.Is(err, models.ErrAuthentication):
		return http.StatusUnauthorized, "invalid credentials"
	default:
		return http.StatusInternalServerError, fallback
	}
}
