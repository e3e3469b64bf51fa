package repository

import (
	"context"

	"shareit/internal/model"
)

// Repository is the data store for item requests.
type Repository interface {
	CreateRequest(ctx context.Context, opt CreateRequestOptions) (model.ItemRequest, error)
	// GetOneRequest returns a zero ItemRequest (ID == 0) when nothing matches.
	GetOneRequest(ctx context.Context, opt GetOneRequestOptions) (model.ItemRequest, error)
	ListRequests(ctx context.Context, opt ListRequestsOptions) ([]model.ItemRequest, error)
}
