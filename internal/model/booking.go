package model

import (
	"slices"
	"time"
)

// BookingStatus is the lifecycle state of a Booking.
type BookingStatus string

const (
	BookingStatusWaiting  BookingStatus = "WAITING"
	BookingStatusApproved BookingStatus = "APPROVED"
	BookingStatusRejected BookingStatus = "REJECTED"
	// BookingStatusCanceled exists in stored data but no operation moves a
	// booking into it.
	BookingStatusCanceled BookingStatus = "CANCELED"
)

// bookingTransitions lists the statuses the owner may move a booking to.
// APPROVED is final, while a REJECTED booking can still be approved later.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusWaiting:  {BookingStatusApproved, BookingStatusRejected},
	BookingStatusRejected: {BookingStatusApproved, BookingStatusRejected},
	BookingStatusCanceled: {BookingStatusApproved, BookingStatusRejected},
	BookingStatusApproved: nil,
}

// CanTransitionTo reports whether the owner may move a booking from s to next.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	return slices.Contains(bookingTransitions[s], next)
}

// Booking reserves an item for a time range on behalf of a booker.
type Booking struct {
	ID     int64
	Start  time.Time
	End    time.Time
	Status BookingStatus
	Item   Item
	Booker User
}

// IsActiveAt reports whether now falls strictly inside the booking range.
func (b Booking) IsActiveAt(now time.Time) bool {
	return b.Start.Before(now) && b.End.After(now)
}
