package booking

import (
	"context"

	"shareit/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Booking, error)
	// Update approves or rejects a booking. Only the item owner may call it.
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Booking, error)
	// Detail is visible to the booker and the item owner.
	Detail(ctx context.Context, sc model.Scope, id int64) (model.Booking, error)
	ListByBooker(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	ListByOwner(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// LastBooking and NextBooking return nil when there is no such booking.
	LastBooking(ctx context.Context, itemID int64) (*model.Booking, error)
	NextBooking(ctx context.Context, itemID int64) (*model.Booking, error)
	// HasCompletedBooking reports whether bookerID has a booking of itemID
	// that already ended.
	HasCompletedBooking(ctx context.Context, bookerID, itemID int64) (bool, error)
}
