package usecase

import (
	"strings"

	"shareit/internal/user"
)

func (uc *implUseCase) validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return user.ErrBlankName
	}
	return nil
}

func (uc *implUseCase) validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return user.ErrBlankEmail
	}
	if err := uc.validate.Var(email, "email"); err != nil {
		return user.ErrInvalidEmail
	}
	return nil
}

// coalesce picks the patched value when present, otherwise the stored one.
func coalesce(patch *string, existing string) string {
	if patch != nil {
		return *patch
	}
	return existing
}
