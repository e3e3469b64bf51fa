package usecase

import (
	"context"
	"strings"

	"shareit/internal/model"
	"shareit/internal/request"
	repo "shareit/internal/request/repository"
)

// Create posts a new item request on behalf of the caller.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input request.CreateInput) (request.RequestView, error) {
	if strings.TrimSpace(input.Description) == "" {
		return request.RequestView{}, request.ErrBlankDescription
	}

	var out request.RequestView
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := uc.checkUser(ctx, sc.UserID); err != nil {
			return err
		}

		req, err := uc.repo.CreateRequest(ctx, repo.CreateRequestOptions{
			Description: input.Description,
			RequestorID: sc.UserID,
			CreatedAt:   uc.now(),
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Create CreateRequest: %v", err)
			return err
		}
		out = request.RequestView{Request: req, Items: []model.Item{}}
		return nil
	})
	if err != nil {
		return request.RequestView{}, err
	}
	return out, nil
}
