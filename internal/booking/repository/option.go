package repository

import (
	"time"

	"shareit/internal/model"
)

// CreateBookingOptions holds parameters for inserting a new Booking.
type CreateBookingOptions struct {
	ItemID   int64
	BookerID int64
	Start    time.Time
	End      time.Time
	Status   model.BookingStatus
}

type GetOneBookingOptions struct {
	ID int64
}

// Order is the sort key of a booking listing.
type Order int

const (
	OrderByIDAsc Order = iota
	OrderByStartDesc
	OrderByStartAsc
	OrderByEndDesc
)

// ListBookingsOptions filters bookings. Zero-valued fields are not applied;
// time bounds are strict.
type ListBookingsOptions struct {
	BookerID int64
	OwnerID  int64
	ItemID   int64
	Status   model.BookingStatus

	StartBefore time.Time
	StartAfter  time.Time
	EndBefore   time.Time
	EndAfter    time.Time

	OrderBy Order
	Limit   int
	Offset  int
}
