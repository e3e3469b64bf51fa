package booking

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrUserNotFound    = errors.New("user not found")

	ErrItemUnavailable   = errors.New("item is not available for rent")
	ErrStartRequired     = errors.New("start time must not be null")
	ErrEndRequired       = errors.New("end time must not be null")
	ErrStartInPast       = errors.New("start time must not be in the past")
	ErrEndInPast         = errors.New("end time must not be in the past")
	ErrEndBeforeStart    = errors.New("end time must be after start time")
	ErrEndEqualsStart    = errors.New("end time must not equal start time")
	ErrAlreadyApproved   = errors.New("booking has already been approved")
	ErrInvalidTransition = errors.New("booking status transition is not allowed")

	// Authorization failures. They are reported as missing resources unless
	// the server is configured otherwise.
	ErrOwnBooking     = errors.New("owner cannot book their own item")
	ErrNotItemOwner   = errors.New("only the item owner can approve or reject a booking")
	ErrNotParticipant = errors.New("booking is visible only to its booker and the item owner")

	ErrUnsupportedState = errors.New("unknown state")
)

// IsAuthorization reports whether err is an ownership or participation failure.
func IsAuthorization(err error) bool {
	return errors.Is(err, ErrOwnBooking) ||
		errors.Is(err, ErrNotItemOwner) ||
		errors.Is(err, ErrNotParticipant)
}
