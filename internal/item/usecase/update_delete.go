package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"shareit/internal/item"
	repo "shareit/internal/item/repository"
	"shareit/internal/model"
)

// Update applies a partial patch to an item the caller owns.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input item.UpdateInput) (model.Item, error) {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return model.Item{}, item.ErrBlankName
	}
	if input.Description != nil && strings.TrimSpace(*input.Description) == "" {
		return model.Item{}, item.ErrBlankDescription
	}

	var out model.Item
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := uc.getOwnedItem(ctx, sc, input.ID)
		if err != nil {
			return err
		}

		it, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
			ID:          existing.ID,
			Name:        coalesce(input.Name, existing.Name),
			Description: coalesce(input.Description, existing.Description),
			Available:   coalesce(input.Available, existing.Available),
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Update UpdateItem: %v", err)
			return err
		}
		if it.ID == 0 {
			return fmt.Errorf("%w: %d", item.ErrItemNotFound, input.ID)
		}
		out = it
		return nil
	})
	if err != nil {
		return model.Item{}, err
	}
	return out, nil
}

// Delete removes an item the caller owns. Items with bookings or comments stay.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id int64) error {
	return uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := uc.getOwnedItem(ctx, sc, id); err != nil {
			return err
		}
		if err := uc.repo.DeleteItem(ctx, id); err != nil {
			if errors.Is(err, repo.ErrStillReferenced) {
				return fmt.Errorf("%w: %d", item.ErrItemReferenced, id)
			}
			uc.l.Errorf(ctx, "uc.Delete DeleteItem: %v", err)
			return err
		}
		return nil
	})
}

func (uc *implUseCase) getOwnedItem(ctx context.Context, sc model.Scope, id int64) (model.Item, error) {
	it, err := uc.getItem(ctx, id)
	if err != nil {
		return model.Item{}, err
	}
	if it.OwnerID != sc.UserID {
		return model.Item{}, fmt.Errorf("%w: item %d", item.ErrNotOwner, id)
	}
	return it, nil
}
