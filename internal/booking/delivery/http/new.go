package http

import (
	"shareit/internal/booking"
	"shareit/pkg/log"
)

type handler struct {
	l             log.Logger
	uc            booking.UseCase
	maskForbidden bool
}

// New creates a new HTTP handler for the booking domain. With maskForbidden
// set, ownership failures are answered as 404 instead of 403.
func New(l log.Logger, uc booking.UseCase, maskForbidden bool) *handler {
	return &handler{
		l:             l,
		uc:            uc,
		maskForbidden: maskForbidden,
	}
}
