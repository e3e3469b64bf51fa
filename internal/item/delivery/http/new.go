package http

import (
	"shareit/internal/item"
	"shareit/pkg/log"
)

type handler struct {
	l             log.Logger
	uc            item.UseCase
	maskForbidden bool
}

// New creates a new HTTP handler for the item domain.
func New(l log.Logger, uc item.UseCase, maskForbidden bool) *handler {
	return &handler{
		l:             l,
		uc:            uc,
		maskForbidden: maskForbidden,
	}
}
