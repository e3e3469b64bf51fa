package usecase

import (
	"context"

	"shareit/internal/user"
	repo "shareit/internal/user/repository"
)

// List returns every registered User ordered by id.
func (uc *implUseCase) List(ctx context.Context) (user.ListOutput, error) {
	var out user.ListOutput
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		users, err := uc.repo.ListUsers(ctx, repo.ListUsersOptions{})
		if err != nil {
			uc.l.Errorf(ctx, "uc.List ListUsers: %v", err)
			return err
		}
		out.Users = users
		return nil
	})
	if err != nil {
		return user.ListOutput{}, err
	}
	return out, nil
}
