package repository

import (
	"context"

	"shareit/internal/model"
)

// Repository is the data store for bookings. Bookings are always returned
// with their item and booker loaded.
type Repository interface {
	CreateBooking(ctx context.Context, opt CreateBookingOptions) (model.Booking, error)
	// GetOneBooking returns a zero Booking (ID == 0) when nothing matches.
	GetOneBooking(ctx context.Context, opt GetOneBookingOptions) (model.Booking, error)
	ListBookings(ctx context.Context, opt ListBookingsOptions) ([]model.Booking, error)
	UpdateBookingStatus(ctx context.Context, id int64, status model.BookingStatus) error
}
