package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"shareit/internal/model"
)

func TestBookingStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to model.BookingStatus
		allowed  bool
	}{
		{model.BookingStatusWaiting, model.BookingStatusApproved, true},
		{model.BookingStatusWaiting, model.BookingStatusRejected, true},
		{model.BookingStatusRejected, model.BookingStatusApproved, true},
		{model.BookingStatusApproved, model.BookingStatusApproved, false},
		{model.BookingStatusApproved, model.BookingStatusRejected, false},
		{model.BookingStatusWaiting, model.BookingStatusCanceled, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestBookingIsActiveAt(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	b := model.Booking{Start: now.Add(-time.Hour), End: now.Add(time.Hour)}
	assert.True(t, b.IsActiveAt(now))
	assert.False(t, b.IsActiveAt(now.Add(2*time.Hour)))
	assert.False(t, b.IsActiveAt(b.Start))
}
