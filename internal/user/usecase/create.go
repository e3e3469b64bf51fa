package usecase

import (
	"context"
	"errors"

	"shareit/internal/user"
	repo "shareit/internal/user/repository"
)

// Create registers a new User after validating name and email.
func (uc *implUseCase) Create(ctx context.Context, input user.CreateInput) (user.CreateOutput, error) {
	if err := uc.validateName(input.Name); err != nil {
		return user.CreateOutput{}, err
	}
	if err := uc.validateEmail(input.Email); err != nil {
		return user.CreateOutput{}, err
	}

	var out user.CreateOutput
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		u, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
			Name:  input.Name,
			Email: input.Email,
		})
		if err != nil {
			if errors.Is(err, repo.ErrDuplicateEmail) {
				return user.ErrEmailTaken
			}
			uc.l.Errorf(ctx, "uc.Create CreateUser: %v", err)
			return err
		}
		out.User = u
		return nil
	})
	if err != nil {
		return user.CreateOutput{}, err
	}
	return out, nil
}
