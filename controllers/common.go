package controllers

import (
	"errors"
	"net/http"

	"github.com/kooooct/futoru/services"
)

// errStatus maps the service error categories onto HTTP statuses.
func errStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrPermissionDenied):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
