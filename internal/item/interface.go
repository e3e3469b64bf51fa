package item

import (
	"context"

	"shareit/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Item, error)
	// Update and Delete are restricted to the item owner.
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Item, error)
	Delete(ctx context.Context, sc model.Scope, id int64) error
	Detail(ctx context.Context, sc model.Scope, id int64) (ItemView, error)
	ListByOwner(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	// Search never matches anything for blank text.
	Search(ctx context.Context, input SearchInput) (SearchOutput, error)
	CreateComment(ctx context.Context, sc model.Scope, input CommentInput) (model.Comment, error)
}
