package user

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrEmailTaken     = errors.New("email is already registered")
	ErrBlankName      = errors.New("name is empty")
	ErrBlankEmail     = errors.New("email is empty")
	ErrInvalidEmail   = errors.New("invalid e-mail format")
	ErrUserReferenced = errors.New("user is still referenced by items, requests, bookings or comments")
)
