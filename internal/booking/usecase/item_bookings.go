package usecase

import (
	"context"

	repo "shareit/internal/booking/repository"
	"shareit/internal/model"
)

// LastBooking prefers an approved booking in progress, then the latest
// approved booking that already ended.
func (uc *implUseCase) LastBooking(ctx context.Context, itemID int64) (*model.Booking, error) {
	now := uc.now()

	var last *model.Booking
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := uc.first(ctx, repo.ListBookingsOptions{
			ItemID:      itemID,
			Status:      model.BookingStatusApproved,
			StartBefore: now,
			EndAfter:    now,
			OrderBy:     repo.OrderByStartDesc,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.LastBooking first(current): %v", err)
			return err
		}
		if current != nil {
			last = current
			return nil
		}

		last, err = uc.first(ctx, repo.ListBookingsOptions{
			ItemID:    itemID,
			Status:    model.BookingStatusApproved,
			EndBefore: now,
			OrderBy:   repo.OrderByEndDesc,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.LastBooking first(past): %v", err)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return last, nil
}

// NextBooking is the earliest approved booking that has not started yet.
func (uc *implUseCase) NextBooking(ctx context.Context, itemID int64) (*model.Booking, error) {
	now := uc.now()

	var next *model.Booking
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		next, err = uc.first(ctx, repo.ListBookingsOptions{
			ItemID:     itemID,
			Status:     model.BookingStatusApproved,
			StartAfter: now,
			OrderBy:    repo.OrderByStartAsc,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.NextBooking first: %v", err)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return next, nil
}

// HasCompletedBooking does not look at the booking status, only at its end.
func (uc *implUseCase) HasCompletedBooking(ctx context.Context, bookerID, itemID int64) (bool, error) {
	now := uc.now()

	var found bool
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		b, err := uc.first(ctx, repo.ListBookingsOptions{
			BookerID:  bookerID,
			ItemID:    itemID,
			EndBefore: now,
			OrderBy:   repo.OrderByEndDesc,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.HasCompletedBooking first: %v", err)
			return err
		}
		found = b != nil
		return nil
	})
	return found, err
}

func (uc *implUseCase) first(ctx context.Context, opt repo.ListBookingsOptions) (*model.Booking, error) {
	opt.Limit = 1
	bookings, err := uc.repo.ListBookings(ctx, opt)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, nil
	}
	return &bookings[0], nil
}
