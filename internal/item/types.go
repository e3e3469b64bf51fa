package item

import (
	"shareit/internal/model"
	"shareit/pkg/paginator"
)

// --- UseCase Inputs ---

// CreateInput carries the new item. Description and Available are pointers
// because both are mandatory and their absence must be detectable.
type CreateInput struct {
	Name        string
	Description *string
	Available   *bool
	RequestID   *int64
}

// UpdateInput is a partial patch: nil fields keep their stored value.
type UpdateInput struct {
	ID          int64
	Name        *string
	Description *string
	Available   *bool
}

type ListInput struct {
	Paginate paginator.PaginateQuery
}

type SearchInput struct {
	Text     string
	Paginate paginator.PaginateQuery
}

type CommentInput struct {
	ItemID int64
	Text   string
}

// --- UseCase Outputs ---

// ItemView is an item as its viewers see it. LastBooking and NextBooking are
// only filled in for the owner.
type ItemView struct {
	Item        model.Item
	LastBooking *model.Booking
	NextBooking *model.Booking
	Comments    []model.Comment
}

type ListOutput struct {
	Items []ItemView
}

type SearchOutput struct {
	Items []model.Item
}
