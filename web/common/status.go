package common

import (
	"errors"
	"net/http"

	"greenwood.com/sis/core"
)

// StatusFromError maps the database error taxonomy onto HTTP statuses.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, core.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrInvalidInput), errors.Is(err, core.ErrInvalidState):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
