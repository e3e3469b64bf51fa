package http

import (
	"errors"

	"shareit/internal/item"
	pkgErrors "shareit/pkg/errors"
	"shareit/pkg/paginator"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, item.ErrNotOwner):
		msg := err.Error()
		if h.maskForbidden {
			msg = item.ErrItemNotFound.Error()
		}
		return pkgErrors.NewAuthorizationError(msg, h.maskForbidden)
	case errors.Is(err, item.ErrItemNotFound),
		errors.Is(err, item.ErrUserNotFound),
		errors.Is(err, item.ErrRequestNotFound):
		return pkgErrors.NewNotFoundError(err.Error())
	case errors.Is(err, item.ErrItemReferenced):
		return pkgErrors.NewConflictError(err.Error())
	case errors.Is(err, item.ErrBlankName),
		errors.Is(err, item.ErrBlankDescription),
		errors.Is(err, item.ErrAvailableRequired),
		errors.Is(err, item.ErrBlankComment),
		errors.Is(err, item.ErrNoCompletedBooking),
		errors.Is(err, paginator.ErrInvalidFrom),
		errors.Is(err, paginator.ErrInvalidSize):
		return pkgErrors.NewValidationError(err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
