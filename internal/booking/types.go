package booking

import (
	"fmt"
	"strings"
	"time"

	"shareit/internal/model"
	"shareit/pkg/paginator"
)

// State selects which of a user's bookings a listing returns.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

// ParseState is case-insensitive; an empty value means ALL.
func ParseState(raw string) (State, error) {
	if strings.TrimSpace(raw) == "" {
		return StateAll, nil
	}
	switch s := State(strings.ToUpper(strings.TrimSpace(raw))); s {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedState, raw)
	}
}

// --- UseCase Inputs ---

// CreateInput is a booking request. Start and End are pointers so that a
// missing value can be told apart from the zero time.
type CreateInput struct {
	ItemID int64
	Start  *time.Time
	End    *time.Time
}

type UpdateInput struct {
	BookingID int64
	Approved  bool
}

type ListInput struct {
	State    string
	Paginate paginator.PaginateQuery
}

// --- UseCase Outputs ---

type ListOutput struct {
	Bookings []model.Booking
}
