package usecase

import (
	"context"
	"fmt"
	"time"

	"shareit/internal/booking"
	repo "shareit/internal/booking/repository"
	"shareit/internal/model"
	itemRepo "shareit/internal/item/repository"
	userRepo "shareit/internal/user/repository"
	"shareit/pkg/sqldb"
)

// Create books an item for the caller. The new booking waits for the owner's decision.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input booking.CreateInput) (model.Booking, error) {
	var out model.Booking
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		item, err := uc.items.GetOneItem(ctx, itemRepo.GetOneItemOptions{ID: input.ItemID})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Create GetOneItem: %v", err)
			return err
		}
		if item.ID == 0 {
			return fmt.Errorf("%w: %d", booking.ErrItemNotFound, input.ItemID)
		}

		booker, err := uc.users.GetOneUser(ctx, userRepo.GetOneUserOptions{ID: sc.UserID})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Create GetOneUser: %v", err)
			return err
		}
		if booker.ID == 0 {
			return fmt.Errorf("%w: %d", booking.ErrUserNotFound, sc.UserID)
		}

		if !item.Available {
			return fmt.Errorf("%w: %d", booking.ErrItemUnavailable, item.ID)
		}
		// Ranges are compared at stored precision.
		start, end := storedTime(input.Start), storedTime(input.End)
		if err := validateRange(start, end, sqldb.Timestamp(uc.now())); err != nil {
			return err
		}
		if item.OwnerID == booker.ID {
			return fmt.Errorf("%w: item %d", booking.ErrOwnBooking, item.ID)
		}

		b, err := uc.repo.CreateBooking(ctx, repo.CreateBookingOptions{
			ItemID:   item.ID,
			BookerID: booker.ID,
			Start:    *start,
			End:      *end,
			Status:   model.BookingStatusWaiting,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Create CreateBooking: %v", err)
			return err
		}
		out = b
		return nil
	})
	if err != nil {
		return model.Booking{}, err
	}
	return out, nil
}

func storedTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	ts := sqldb.Timestamp(*t)
	return &ts
}

// validateRange checks a requested booking window against now.
func validateRange(start, end *time.Time, now time.Time) error {
	switch {
	case start == nil:
		return booking.ErrStartRequired
	case end == nil:
		return booking.ErrEndRequired
	case start.Before(now):
		return booking.ErrStartInPast
	case end.Before(now):
		return booking.ErrEndInPast
	case end.Before(*start):
		return booking.ErrEndBeforeStart
	case end.Equal(*start):
		return booking.ErrEndEqualsStart
	}
	return nil
}
