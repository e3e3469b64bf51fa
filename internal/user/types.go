package user

import "shareit/internal/model"

// --- UseCase Inputs ---

type CreateInput struct {
	Name  string
	Email string
}

// UpdateInput is a partial patch: nil fields keep their stored value.
type UpdateInput struct {
	ID    int64
	Name  *string
	Email *string
}

// --- UseCase Outputs ---

type CreateOutput struct {
	User model.User
}

type DetailOutput struct {
	User model.User
}

type UpdateOutput struct {
	User model.User
}

type ListOutput struct {
	Users []model.User
}
