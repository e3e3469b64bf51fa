package item

import "errors"

var (
	ErrItemNotFound    = errors.New("item not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrRequestNotFound = errors.New("item request not found")

	ErrBlankName          = errors.New("name must not be empty")
	ErrBlankDescription   = errors.New("description must not be empty")
	ErrAvailableRequired  = errors.New("available must be set")
	ErrBlankComment       = errors.New("comment must not be empty")
	ErrNoCompletedBooking = errors.New("booking not found")

	// ErrNotOwner is an authorization failure, reported as a missing item
	// unless the server is configured otherwise.
	ErrNotOwner = errors.New("only the owner can modify an item")

	ErrItemReferenced = errors.New("item is still referenced by bookings or comments")
)
