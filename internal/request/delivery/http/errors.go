package http

import (
	"errors"

	"shareit/internal/request"
	pkgErrors "shareit/pkg/errors"
	"shareit/pkg/paginator"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, request.ErrUserNotFound),
		errors.Is(err, request.ErrRequestNotFound):
		return pkgErrors.NewNotFoundError(err.Error())
	case errors.Is(err, request.ErrBlankDescription),
		errors.Is(err, paginator.ErrInvalidFrom),
		errors.Is(err, paginator.ErrInvalidSize):
		return pkgErrors.NewValidationError(err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
