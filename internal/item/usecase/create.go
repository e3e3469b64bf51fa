package usecase

import (
	"context"
	"fmt"
	"strings"

	"shareit/internal/item"
	repo "shareit/internal/item/repository"
	"shareit/internal/model"
	requestRepo "shareit/internal/request/repository"
)

// Create lists a new item for the caller, optionally answering an item request.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input item.CreateInput) (model.Item, error) {
	if strings.TrimSpace(input.Name) == "" {
		return model.Item{}, item.ErrBlankName
	}
	if input.Description == nil || strings.TrimSpace(*input.Description) == "" {
		return model.Item{}, item.ErrBlankDescription
	}
	if input.Available == nil {
		return model.Item{}, item.ErrAvailableRequired
	}

	var out model.Item
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := uc.getUser(ctx, sc.UserID); err != nil {
			return err
		}

		if input.RequestID != nil {
			req, err := uc.requests.GetOneRequest(ctx, requestRepo.GetOneRequestOptions{ID: *input.RequestID})
			if err != nil {
				uc.l.Errorf(ctx, "uc.Create GetOneRequest: %v", err)
				return err
			}
			if req.ID == 0 {
				return fmt.Errorf("%w: %d", item.ErrRequestNotFound, *input.RequestID)
			}
		}

		it, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
			Name:        input.Name,
			Description: *input.Description,
			Available:   *input.Available,
			OwnerID:     sc.UserID,
			RequestID:   input.RequestID,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
			return err
		}
		out = it
		return nil
	})
	if err != nil {
		return model.Item{}, err
	}
	return out, nil
}
