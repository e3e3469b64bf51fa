package usecase

import (
	"time"

	itemRepo "shareit/internal/item/repository"
	"shareit/internal/request"
	"shareit/internal/request/repository"
	userRepo "shareit/internal/user/repository"
	"shareit/pkg/log"
	"shareit/pkg/sqldb"
)

// implUseCase is the private implementation of request.UseCase.
type implUseCase struct {
	repo  repository.Repository
	items itemRepo.ItemRepository
	users userRepo.Repository
	tx    sqldb.Transactor
	l     log.Logger
	now   func() time.Time
}

var _ request.UseCase = (*implUseCase)(nil)

// New creates a new request UseCase implementation.
func New(
	repo repository.Repository,
	items itemRepo.ItemRepository,
	users userRepo.Repository,
	tx sqldb.Transactor,
	l log.Logger,
) *implUseCase {
	return &implUseCase{
		repo:  repo,
		items: items,
		users: users,
		tx:    tx,
		l:     l,
		now:   time.Now,
	}
}
