package usecase

import (
	"context"
	"fmt"
	"time"

	"shareit/internal/booking"
	repo "shareit/internal/booking/repository"
	"shareit/internal/model"
	userRepo "shareit/internal/user/repository"
)

// ListByBooker lists the bookings the caller made.
func (uc *implUseCase) ListByBooker(ctx context.Context, sc model.Scope, input booking.ListInput) (booking.ListOutput, error) {
	return uc.list(ctx, sc, input, repo.ListBookingsOptions{BookerID: sc.UserID})
}

// ListByOwner lists the bookings of every item the caller owns.
func (uc *implUseCase) ListByOwner(ctx context.Context, sc model.Scope, input booking.ListInput) (booking.ListOutput, error) {
	return uc.list(ctx, sc, input, repo.ListBookingsOptions{OwnerID: sc.UserID})
}

func (uc *implUseCase) list(ctx context.Context, sc model.Scope, input booking.ListInput, opt repo.ListBookingsOptions) (booking.ListOutput, error) {
	if err := input.Paginate.Validate(); err != nil {
		return booking.ListOutput{}, err
	}
	state, err := booking.ParseState(input.State)
	if err != nil {
		return booking.ListOutput{}, err
	}

	applyState(&opt, state, uc.now())
	opt.Limit = input.Paginate.Limit()
	opt.Offset = input.Paginate.Offset()

	var out booking.ListOutput
	err = uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		u, err := uc.users.GetOneUser(ctx, userRepo.GetOneUserOptions{ID: sc.UserID})
		if err != nil {
			uc.l.Errorf(ctx, "uc.list GetOneUser: %v", err)
			return err
		}
		if u.ID == 0 {
			return fmt.Errorf("%w: %d", booking.ErrUserNotFound, sc.UserID)
		}

		bookings, err := uc.repo.ListBookings(ctx, opt)
		if err != nil {
			uc.l.Errorf(ctx, "uc.list ListBookings: %v", err)
			return err
		}
		out.Bookings = bookings
		return nil
	})
	if err != nil {
		return booking.ListOutput{}, err
	}
	return out, nil
}

// applyState translates a listing state into filters and a sort order.
// Time-based states sort by start, newest first; status states and CURRENT
// sort by id.
func applyState(opt *repo.ListBookingsOptions, state booking.State, now time.Time) {
	switch state {
	case booking.StateAll:
		opt.OrderBy = repo.OrderByStartDesc
	case booking.StatePast:
		opt.EndBefore = now
		opt.OrderBy = repo.OrderByStartDesc
	case booking.StateFuture:
		opt.StartAfter = now
		opt.OrderBy = repo.OrderByStartDesc
	case booking.StateCurrent:
		opt.StartBefore = now
		opt.EndAfter = now
		opt.OrderBy = repo.OrderByIDAsc
	case booking.StateWaiting:
		opt.Status = model.BookingStatusWaiting
		opt.OrderBy = repo.OrderByIDAsc
	case booking.StateRejected:
		opt.Status = model.BookingStatusRejected
		opt.OrderBy = repo.OrderByIDAsc
	}
}
