package repository

import "time"

// CreateItemOptions holds parameters for inserting a new Item.
type CreateItemOptions struct {
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   *int64
}

// GetOneItemOptions holds filter parameters for fetching a single Item.
type GetOneItemOptions struct {
	ID int64
}

// ListItemsOptions filters items. Zero-valued fields are not applied.
// Results are ordered by id.
type ListItemsOptions struct {
	OwnerID    int64
	RequestIDs []int64
	Limit      int
	Offset     int
}

// SearchItemsOptions matches Text case-insensitively against name and
// description of available items.
type SearchItemsOptions struct {
	Text   string
	Limit  int
	Offset int
}

// UpdateItemOptions holds the full new state of an Item.
type UpdateItemOptions struct {
	ID          int64
	Name        string
	Description string
	Available   bool
}

type CreateCommentOptions struct {
	Text      string
	ItemID    int64
	AuthorID  int64
	CreatedAt time.Time
}

// ListCommentsOptions selects the comments of the given items, oldest first.
type ListCommentsOptions struct {
	ItemIDs []int64
}
