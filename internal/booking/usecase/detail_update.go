package usecase

import (
	"context"
	"fmt"

	"shareit/internal/booking"
	repo "shareit/internal/booking/repository"
	"shareit/internal/model"
)

// Update records the owner's decision on a booking. An approved booking is final.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input booking.UpdateInput) (model.Booking, error) {
	var out model.Booking
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		b, err := uc.getBooking(ctx, input.BookingID)
		if err != nil {
			return err
		}
		if b.Item.OwnerID != sc.UserID {
			return fmt.Errorf("%w: booking %d", booking.ErrNotItemOwner, b.ID)
		}

		next := model.BookingStatusRejected
		if input.Approved {
			next = model.BookingStatusApproved
		}
		if b.Status == model.BookingStatusApproved {
			return fmt.Errorf("%w: %d", booking.ErrAlreadyApproved, b.ID)
		}
		if !b.Status.CanTransitionTo(next) {
			return fmt.Errorf("%w: %s -> %s", booking.ErrInvalidTransition, b.Status, next)
		}

		if err := uc.repo.UpdateBookingStatus(ctx, b.ID, next); err != nil {
			uc.l.Errorf(ctx, "uc.Update UpdateBookingStatus: %v", err)
			return err
		}
		b.Status = next
		out = b
		return nil
	})
	if err != nil {
		return model.Booking{}, err
	}
	return out, nil
}

// Detail returns a booking to its booker or to the owner of the booked item.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id int64) (model.Booking, error) {
	var out model.Booking
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		b, err := uc.getBooking(ctx, id)
		if err != nil {
			return err
		}
		if b.Booker.ID != sc.UserID && b.Item.OwnerID != sc.UserID {
			return fmt.Errorf("%w: booking %d", booking.ErrNotParticipant, b.ID)
		}
		out = b
		return nil
	})
	if err != nil {
		return model.Booking{}, err
	}
	return out, nil
}

func (uc *implUseCase) getBooking(ctx context.Context, id int64) (model.Booking, error) {
	b, err := uc.repo.GetOneBooking(ctx, repo.GetOneBookingOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getBooking GetOneBooking: %v", err)
		return model.Booking{}, err
	}
	if b.ID == 0 {
		return model.Booking{}, fmt.Errorf("%w: %d", booking.ErrBookingNotFound, id)
	}
	return b, nil
}
