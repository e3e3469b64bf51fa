package request

import (
	"context"

	"shareit/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (RequestView, error)
	// ListOwn returns the caller's requests, newest first.
	ListOwn(ctx context.Context, sc model.Scope) (ListOutput, error)
	// ListOthers returns everyone else's requests, newest first.
	ListOthers(ctx context.Context, sc model.Scope, input ListOthersInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id int64) (RequestView, error)
}
