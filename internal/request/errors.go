package request

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrRequestNotFound  = errors.New("item request not found")
	ErrBlankDescription = errors.New("description must not be empty")
)
