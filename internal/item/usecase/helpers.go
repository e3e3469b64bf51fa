package usecase

import (
	"context"
	"fmt"

	"shareit/internal/item"
	repo "shareit/internal/item/repository"
	"shareit/internal/model"
	userRepo "shareit/internal/user/repository"
)

func (uc *implUseCase) getItem(ctx context.Context, id int64) (model.Item, error) {
	it, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getItem GetOneItem: %v", err)
		return model.Item{}, err
	}
	if it.ID == 0 {
		return model.Item{}, fmt.Errorf("%w: %d", item.ErrItemNotFound, id)
	}
	return it, nil
}

func (uc *implUseCase) getUser(ctx context.Context, id int64) (model.User, error) {
	u, err := uc.users.GetOneUser(ctx, userRepo.GetOneUserOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getUser GetOneUser: %v", err)
		return model.User{}, err
	}
	if u.ID == 0 {
		return model.User{}, fmt.Errorf("%w: %d", item.ErrUserNotFound, id)
	}
	return u, nil
}

// coalesce picks the patched value when present, otherwise the stored one.
func coalesce[T any](patch *T, existing T) T {
	if patch != nil {
		return *patch
	}
	return existing
}
