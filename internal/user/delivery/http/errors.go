package http

import (
	"errors"

	"shareit/internal/user"
	pkgErrors "shareit/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return pkgErrors.NewNotFoundError(err.Error())
	case errors.Is(err, user.ErrEmailTaken),
		errors.Is(err, user.ErrUserReferenced):
		return pkgErrors.NewConflictError(err.Error())
	case errors.Is(err, user.ErrBlankName),
		errors.Is(err, user.ErrBlankEmail),
		errors.Is(err, user.ErrInvalidEmail):
		return pkgErrors.NewValidationError(err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
