package usecase

import (
	"context"
	"errors"
	"fmt"

	"shareit/internal/model"
	"shareit/internal/user"
	repo "shareit/internal/user/repository"
)

// Detail retrieves a single User by ID. Returns ErrUserNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (user.DetailOutput, error) {
	var out user.DetailOutput
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		u, err := uc.getUser(ctx, id)
		if err != nil {
			return err
		}
		out.User = u
		return nil
	})
	if err != nil {
		return user.DetailOutput{}, err
	}
	return out, nil
}

// Update applies a partial patch. Keeping one's own email is not a conflict.
func (uc *implUseCase) Update(ctx context.Context, input user.UpdateInput) (user.UpdateOutput, error) {
	if input.Name != nil {
		if err := uc.validateName(*input.Name); err != nil {
			return user.UpdateOutput{}, err
		}
	}
	if input.Email != nil {
		if err := uc.validateEmail(*input.Email); err != nil {
			return user.UpdateOutput{}, err
		}
	}

	var out user.UpdateOutput
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := uc.getUser(ctx, input.ID)
		if err != nil {
			return err
		}

		email := coalesce(input.Email, existing.Email)
		if email != existing.Email {
			owner, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
			if err != nil {
				uc.l.Errorf(ctx, "uc.Update GetOneUser: %v", err)
				return err
			}
			if owner.ID != 0 && owner.ID != existing.ID {
				return user.ErrEmailTaken
			}
		}

		u, err := uc.repo.UpdateUser(ctx, repo.UpdateUserOptions{
			ID:    existing.ID,
			Name:  coalesce(input.Name, existing.Name),
			Email: email,
		})
		if err != nil {
			if errors.Is(err, repo.ErrDuplicateEmail) {
				return user.ErrEmailTaken
			}
			uc.l.Errorf(ctx, "uc.Update UpdateUser: %v", err)
			return err
		}
		if u.ID == 0 {
			return fmt.Errorf("%w: %d", user.ErrUserNotFound, input.ID)
		}
		out.User = u
		return nil
	})
	if err != nil {
		return user.UpdateOutput{}, err
	}
	return out, nil
}

// Delete removes a User. Users still referenced elsewhere cannot be deleted.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	return uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := uc.getUser(ctx, id); err != nil {
			return err
		}
		if err := uc.repo.DeleteUser(ctx, id); err != nil {
			if errors.Is(err, repo.ErrStillReferenced) {
				return user.ErrUserReferenced
			}
			uc.l.Errorf(ctx, "uc.Delete DeleteUser: %v", err)
			return err
		}
		return nil
	})
}

func (uc *implUseCase) getUser(ctx context.Context, id int64) (model.User, error) {
	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getUser GetOneUser: %v", err)
		return model.User{}, err
	}
	if u.ID == 0 {
		return model.User{}, fmt.Errorf("%w: %d", user.ErrUserNotFound, id)
	}
	return u, nil
}
