package http

import (
	"errors"

	"shareit/internal/booking"
	pkgErrors "shareit/pkg/errors"
	"shareit/pkg/paginator"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case booking.IsAuthorization(err):
		return pkgErrors.NewAuthorizationError(h.authorizationMessage(err), h.maskForbidden)
	case errors.Is(err, booking.ErrBookingNotFound),
		errors.Is(err, booking.ErrItemNotFound),
		errors.Is(err, booking.ErrUserNotFound):
		return pkgErrors.NewNotFoundError(err.Error())
	case errors.Is(err, booking.ErrUnsupportedState):
		return pkgErrors.NewUnsupportedStateError(err.Error())
	case errors.Is(err, booking.ErrItemUnavailable),
		errors.Is(err, booking.ErrStartRequired),
		errors.Is(err, booking.ErrEndRequired),
		errors.Is(err, booking.ErrStartInPast),
		errors.Is(err, booking.ErrEndInPast),
		errors.Is(err, booking.ErrEndBeforeStart),
		errors.Is(err, booking.ErrEndEqualsStart),
		errors.Is(err, booking.ErrAlreadyApproved),
		errors.Is(err, booking.ErrInvalidTransition),
		errors.Is(err, paginator.ErrInvalidFrom),
		errors.Is(err, paginator.ErrInvalidSize):
		return pkgErrors.NewValidationError(err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// authorizationMessage hides why access was refused when failures are masked.
func (h *handler) authorizationMessage(err error) string {
	if !h.maskForbidden {
		return err.Error()
	}
	if errors.Is(err, booking.ErrOwnBooking) {
		return booking.ErrItemNotFound.Error()
	}
	return booking.ErrBookingNotFound.Error()
}
