package usecase

import (
	"github.com/go-playground/validator/v10"

	"shareit/internal/user"
	"shareit/internal/user/repository"
	"shareit/pkg/log"
	"shareit/pkg/sqldb"
)

// implUseCase is the private implementation of user.UseCase.
type implUseCase struct {
	repo     repository.Repository
	tx       sqldb.Transactor
	l        log.Logger
	validate *validator.Validate
}

var _ user.UseCase = (*implUseCase)(nil)

// New creates a new user UseCase implementation.
func New(repo repository.Repository, tx sqldb.Transactor, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:     repo,
		tx:       tx,
		l:        l,
		validate: validator.New(),
	}
}
