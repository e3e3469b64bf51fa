package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shareit/internal/booking"
	bookingRepo "shareit/internal/booking/repository"
	bookingStore "shareit/internal/booking/repository/sqlstore"
	itemRepo "shareit/internal/item/repository"
	itemStore "shareit/internal/item/repository/sqlstore"
	"shareit/internal/model"
	userRepo "shareit/internal/user/repository"
	userStore "shareit/internal/user/repository/sqlstore"
	"shareit/pkg/log"
	"shareit/pkg/paginator"
	"shareit/pkg/sqldb/sqldbtest"
)

var now = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

type fixture struct {
	uc       *implUseCase
	bookings bookingRepo.Repository

	owner, booker, stranger model.User
	item, hidden            model.Item
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	db := sqldbtest.Open(t)
	l := log.NewNop()
	users := userStore.New(db, l)
	items := itemStore.New(db, l)
	bookings := bookingStore.New(db, l)

	f := &fixture{bookings: bookings}
	f.uc = New(bookings, items, users, db, l)
	f.uc.now = func() time.Time { return now }

	var err error
	f.owner, err = users.CreateUser(ctx, userRepo.CreateUserOptions{Name: "Owner", Email: "owner@example.com"})
	require.NoError(t, err)
	f.booker, err = users.CreateUser(ctx, userRepo.CreateUserOptions{Name: "Booker", Email: "booker@example.com"})
	require.NoError(t, err)
	f.stranger, err = users.CreateUser(ctx, userRepo.CreateUserOptions{Name: "Stranger", Email: "stranger@example.com"})
	require.NoError(t, err)

	f.item, err = items.CreateItem(ctx, itemRepo.CreateItemOptions{
		Name: "Drill", Description: "Cordless drill", Available: true, OwnerID: f.owner.ID,
	})
	require.NoError(t, err)
	f.hidden, err = items.CreateItem(ctx, itemRepo.CreateItemOptions{
		Name: "Saw", Description: "Not for rent", Available: false, OwnerID: f.owner.ID,
	})
	require.NoError(t, err)

	return f
}

// seed stores a booking directly, bypassing the creation time checks.
func (f *fixture) seed(t *testing.T, start, end time.Time, status model.BookingStatus) model.Booking {
	t.Helper()
	b, err := f.bookings.CreateBooking(context.Background(), bookingRepo.CreateBookingOptions{
		ItemID: f.item.ID, BookerID: f.booker.ID, Start: start, End: end, Status: status,
	})
	require.NoError(t, err)
	return b
}

func ptr(t time.Time) *time.Time { return &t }

func ids(bookings []model.Booking) []int64 {
	out := make([]int64, len(bookings))
	for i, b := range bookings {
		out[i] = b.ID
	}
	return out
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	b, err := f.uc.Create(ctx, model.Scope{UserID: f.booker.ID}, booking.CreateInput{
		ItemID: f.item.ID,
		Start:  ptr(now.Add(time.Second)),
		End:    ptr(now.Add(2 * time.Second)),
	})
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusWaiting, b.Status)
	assert.Equal(t, f.item.ID, b.Item.ID)
	assert.Equal(t, "Drill", b.Item.Name)
	assert.Equal(t, f.booker.ID, b.Booker.ID)
	assert.Equal(t, "Booker", b.Booker.Name)
	assert.True(t, b.Start.Equal(now.Add(time.Second)))
}

func TestCreateStoresWholeSeconds(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.uc.now = func() time.Time { return now.Add(300 * time.Millisecond) }

	b, err := f.uc.Create(ctx, model.Scope{UserID: f.booker.ID}, booking.CreateInput{
		ItemID: f.item.ID,
		Start:  ptr(now.Add(900 * time.Millisecond)),
		End:    ptr(now.Add(1100 * time.Millisecond)),
	})
	require.NoError(t, err)
	assert.True(t, b.Start.Equal(now), b.Start)
	assert.True(t, b.End.Equal(now.Add(time.Second)), b.End)
	assert.True(t, b.Start.Before(b.End))
}

func TestCreateRejected(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	start, end := now.Add(time.Hour), now.Add(2*time.Hour)
	tests := map[string]struct {
		caller  int64
		input   booking.CreateInput
		wantErr error
	}{
		"missing item": {
			caller:  f.booker.ID,
			input:   booking.CreateInput{ItemID: 999, Start: &start, End: &end},
			wantErr: booking.ErrItemNotFound,
		},
		"missing booker": {
			caller:  999,
			input:   booking.CreateInput{ItemID: f.item.ID, Start: &start, End: &end},
			wantErr: booking.ErrUserNotFound,
		},
		"unavailable item": {
			caller:  f.booker.ID,
			input:   booking.CreateInput{ItemID: f.hidden.ID, Start: &start, End: &end},
			wantErr: booking.ErrItemUnavailable,
		},
		"no start": {
			caller:  f.booker.ID,
			input:   booking.CreateInput{ItemID: f.item.ID, End: &end},
			wantErr: booking.ErrStartRequired,
		},
		"no end": {
			caller:  f.booker.ID,
			input:   booking.CreateInput{ItemID: f.item.ID, Start: &start},
			wantErr: booking.ErrEndRequired,
		},
		"start in past": {
			caller:  f.booker.ID,
			input:   booking.CreateInput{ItemID: f.item.ID, Start: ptr(now.Add(-time.Hour)), End: &end},
			wantErr: booking.ErrStartInPast,
		},
		"end before start": {
			caller:  f.booker.ID,
			input:   booking.CreateInput{ItemID: f.item.ID, Start: &end, End: &start},
			wantErr: booking.ErrEndBeforeStart,
		},
		"end equals start": {
			caller:  f.booker.ID,
			input:   booking.CreateInput{ItemID: f.item.ID, Start: &start, End: &start},
			wantErr: booking.ErrEndEqualsStart,
		},
		"start and end in the same second": {
			caller: f.booker.ID,
			input: booking.CreateInput{
				ItemID: f.item.ID,
				Start:  ptr(now.Add(1200 * time.Millisecond)),
				End:    ptr(now.Add(1700 * time.Millisecond)),
			},
			wantErr: booking.ErrEndEqualsStart,
		},
		"owner books own item": {
			caller:  f.owner.ID,
			input:   booking.CreateInput{ItemID: f.item.ID, Start: &start, End: &end},
			wantErr: booking.ErrOwnBooking,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := f.uc.Create(ctx, model.Scope{UserID: tc.caller}, tc.input)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	all, err := f.bookings.ListBookings(ctx, bookingRepo.ListBookingsOptions{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ownerScope := model.Scope{UserID: f.owner.ID}

	t.Run("approve once", func(t *testing.T) {
		b := f.seed(t, now.Add(time.Hour), now.Add(2*time.Hour), model.BookingStatusWaiting)

		got, err := f.uc.Update(ctx, ownerScope, booking.UpdateInput{BookingID: b.ID, Approved: true})
		require.NoError(t, err)
		assert.Equal(t, model.BookingStatusApproved, got.Status)

		for _, approved := range []bool{true, false} {
			_, err = f.uc.Update(ctx, ownerScope, booking.UpdateInput{BookingID: b.ID, Approved: approved})
			assert.ErrorIs(t, err, booking.ErrAlreadyApproved)
		}

		stored, err := f.uc.Detail(ctx, ownerScope, b.ID)
		require.NoError(t, err)
		assert.Equal(t, model.BookingStatusApproved, stored.Status)
	})

	t.Run("rejected can still be approved", func(t *testing.T) {
		b := f.seed(t, now.Add(time.Hour), now.Add(2*time.Hour), model.BookingStatusWaiting)

		got, err := f.uc.Update(ctx, ownerScope, booking.UpdateInput{BookingID: b.ID})
		require.NoError(t, err)
		assert.Equal(t, model.BookingStatusRejected, got.Status)

		got, err = f.uc.Update(ctx, ownerScope, booking.UpdateInput{BookingID: b.ID, Approved: true})
		require.NoError(t, err)
		assert.Equal(t, model.BookingStatusApproved, got.Status)
	})

	t.Run("only the owner decides", func(t *testing.T) {
		b := f.seed(t, now.Add(time.Hour), now.Add(2*time.Hour), model.BookingStatusWaiting)

		_, err := f.uc.Update(ctx, model.Scope{UserID: f.booker.ID}, booking.UpdateInput{BookingID: b.ID, Approved: true})
		assert.ErrorIs(t, err, booking.ErrNotItemOwner)
		assert.True(t, booking.IsAuthorization(err))
	})

	t.Run("missing booking", func(t *testing.T) {
		_, err := f.uc.Update(ctx, ownerScope, booking.UpdateInput{BookingID: 999, Approved: true})
		assert.ErrorIs(t, err, booking.ErrBookingNotFound)
	})
}

func TestDetail(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	b := f.seed(t, now.Add(time.Hour), now.Add(2*time.Hour), model.BookingStatusWaiting)

	first, err := f.uc.Detail(ctx, model.Scope{UserID: f.booker.ID}, b.ID)
	require.NoError(t, err)
	second, err := f.uc.Detail(ctx, model.Scope{UserID: f.owner.ID}, b.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	_, err = f.uc.Detail(ctx, model.Scope{UserID: f.stranger.ID}, b.ID)
	assert.ErrorIs(t, err, booking.ErrNotParticipant)

	_, err = f.uc.Detail(ctx, model.Scope{UserID: f.booker.ID}, 999)
	assert.ErrorIs(t, err, booking.ErrBookingNotFound)
}

func TestListStates(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	past := f.seed(t, now.Add(-48*time.Hour), now.Add(-24*time.Hour), model.BookingStatusApproved)
	current := f.seed(t, now.Add(-time.Hour), now.Add(time.Hour), model.BookingStatusApproved)
	future := f.seed(t, now.Add(24*time.Hour), now.Add(48*time.Hour), model.BookingStatusWaiting)
	rejected := f.seed(t, now.Add(72*time.Hour), now.Add(96*time.Hour), model.BookingStatusRejected)

	page := paginator.PaginateQuery{From: 0, Size: 10}
	tests := map[string][]int64{
		"":         {rejected.ID, future.ID, current.ID, past.ID},
		"all":      {rejected.ID, future.ID, current.ID, past.ID},
		"PAST":     {past.ID},
		"CURRENT":  {current.ID},
		"FUTURE":   {rejected.ID, future.ID},
		"WAITING":  {future.ID},
		"REJECTED": {rejected.ID},
	}

	for state, want := range tests {
		t.Run("booker "+state, func(t *testing.T) {
			out, err := f.uc.ListByBooker(ctx, model.Scope{UserID: f.booker.ID}, booking.ListInput{State: state, Paginate: page})
			require.NoError(t, err)
			assert.Equal(t, want, ids(out.Bookings))
		})
		t.Run("owner "+state, func(t *testing.T) {
			out, err := f.uc.ListByOwner(ctx, model.Scope{UserID: f.owner.ID}, booking.ListInput{State: state, Paginate: page})
			require.NoError(t, err)
			assert.Equal(t, want, ids(out.Bookings))
		})
	}

	out, err := f.uc.ListByBooker(ctx, model.Scope{UserID: f.stranger.ID}, booking.ListInput{Paginate: page})
	require.NoError(t, err)
	assert.Empty(t, out.Bookings)
}

func TestListValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	sc := model.Scope{UserID: f.booker.ID}

	_, err := f.uc.ListByBooker(ctx, sc, booking.ListInput{State: "bogus", Paginate: paginator.PaginateQuery{Size: 10}})
	assert.ErrorIs(t, err, booking.ErrUnsupportedState)

	_, err = f.uc.ListByOwner(ctx, sc, booking.ListInput{Paginate: paginator.PaginateQuery{From: -1, Size: 10}})
	assert.ErrorIs(t, err, paginator.ErrInvalidFrom)

	_, err = f.uc.ListByBooker(ctx, sc, booking.ListInput{Paginate: paginator.PaginateQuery{Size: 0}})
	assert.ErrorIs(t, err, paginator.ErrInvalidSize)

	_, err = f.uc.ListByBooker(ctx, model.Scope{UserID: 999}, booking.ListInput{Paginate: paginator.PaginateQuery{Size: 10}})
	assert.ErrorIs(t, err, booking.ErrUserNotFound)
}

func TestListPagination(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	sc := model.Scope{UserID: f.booker.ID}

	var seeded []int64
	for i := range 5 {
		b := f.seed(t, now.Add(time.Duration(i+1)*time.Hour), now.Add(time.Duration(i+2)*time.Hour), model.BookingStatusWaiting)
		seeded = append(seeded, b.ID)
	}

	// from=3,size=2 falls on the second page.
	out, err := f.uc.ListByBooker(ctx, sc, booking.ListInput{State: "WAITING", Paginate: paginator.PaginateQuery{From: 3, Size: 2}})
	require.NoError(t, err)
	assert.Equal(t, seeded[2:4], ids(out.Bookings))

	out, err = f.uc.ListByOwner(ctx, model.Scope{UserID: f.owner.ID}, booking.ListInput{State: "WAITING", Paginate: paginator.PaginateQuery{From: 3, Size: 2}})
	require.NoError(t, err)
	assert.Equal(t, seeded[2:4], ids(out.Bookings))
}

func TestLastAndNextBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("nothing booked", func(t *testing.T) {
		f := newFixture(t)

		last, err := f.uc.LastBooking(ctx, f.item.ID)
		require.NoError(t, err)
		assert.Nil(t, last)

		next, err := f.uc.NextBooking(ctx, f.item.ID)
		require.NoError(t, err)
		assert.Nil(t, next)
	})

	t.Run("current wins over ended", func(t *testing.T) {
		f := newFixture(t)
		f.seed(t, now.Add(-48*time.Hour), now.Add(-24*time.Hour), model.BookingStatusApproved)
		current := f.seed(t, now.Add(-time.Hour), now.Add(time.Hour), model.BookingStatusApproved)

		last, err := f.uc.LastBooking(ctx, f.item.ID)
		require.NoError(t, err)
		require.NotNil(t, last)
		assert.Equal(t, current.ID, last.ID)
	})

	t.Run("latest ended approved booking", func(t *testing.T) {
		f := newFixture(t)
		f.seed(t, now.Add(-72*time.Hour), now.Add(-48*time.Hour), model.BookingStatusApproved)
		recent := f.seed(t, now.Add(-30*time.Hour), now.Add(-24*time.Hour), model.BookingStatusApproved)
		f.seed(t, now.Add(-10*time.Hour), now.Add(-5*time.Hour), model.BookingStatusRejected)

		last, err := f.uc.LastBooking(ctx, f.item.ID)
		require.NoError(t, err)
		require.NotNil(t, last)
		assert.Equal(t, recent.ID, last.ID)
	})

	t.Run("earliest approved upcoming booking", func(t *testing.T) {
		f := newFixture(t)
		f.seed(t, now.Add(time.Hour), now.Add(2*time.Hour), model.BookingStatusWaiting)
		soon := f.seed(t, now.Add(3*time.Hour), now.Add(4*time.Hour), model.BookingStatusApproved)
		f.seed(t, now.Add(5*time.Hour), now.Add(6*time.Hour), model.BookingStatusApproved)

		next, err := f.uc.NextBooking(ctx, f.item.ID)
		require.NoError(t, err)
		require.NotNil(t, next)
		assert.Equal(t, soon.ID, next.ID)
	})
}

func TestHasCompletedBooking(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.seed(t, now.Add(time.Hour), now.Add(2*time.Hour), model.BookingStatusApproved)
	ok, err := f.uc.HasCompletedBooking(ctx, f.booker.ID, f.item.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	f.seed(t, now.Add(-2*time.Hour), now.Add(-time.Hour), model.BookingStatusWaiting)
	ok, err = f.uc.HasCompletedBooking(ctx, f.booker.ID, f.item.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.uc.HasCompletedBooking(ctx, f.stranger.ID, f.item.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
