package repository

import (
	"context"

	"shareit/internal/model"
)

// Repository is the data store for items and their comments.
type Repository interface {
	ItemRepository
	CommentRepository
}

type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (model.Item, error)
	// GetOneItem returns a zero Item (ID == 0) when nothing matches.
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (model.Item, error)
	ListItems(ctx context.Context, opt ListItemsOptions) ([]model.Item, error)
	SearchItems(ctx context.Context, opt SearchItemsOptions) ([]model.Item, error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (model.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}

type CommentRepository interface {
	CreateComment(ctx context.Context, opt CreateCommentOptions) (model.Comment, error)
	ListComments(ctx context.Context, opt ListCommentsOptions) ([]model.Comment, error)
}
