package usecase

import (
	"time"

	"shareit/internal/booking"
	"shareit/internal/item"
	"shareit/internal/item/repository"
	requestRepo "shareit/internal/request/repository"
	userRepo "shareit/internal/user/repository"
	"shareit/pkg/log"
	"shareit/pkg/sqldb"
)

// implUseCase is the private implementation of item.UseCase.
type implUseCase struct {
	repo     repository.Repository
	users    userRepo.Repository
	requests requestRepo.Repository
	bookings booking.UseCase
	tx       sqldb.Transactor
	l        log.Logger
	now      func() time.Time
}

var _ item.UseCase = (*implUseCase)(nil)

// New creates a new item UseCase implementation.
func New(
	repo repository.Repository,
	users userRepo.Repository,
	requests requestRepo.Repository,
	bookings booking.UseCase,
	tx sqldb.Transactor,
	l log.Logger,
) *implUseCase {
	return &implUseCase{
		repo:     repo,
		users:    users,
		requests: requests,
		bookings: bookings,
		tx:       tx,
		l:        l,
		now:      time.Now,
	}
}
