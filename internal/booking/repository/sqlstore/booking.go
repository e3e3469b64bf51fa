package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/doug-martin/goqu/v9"

	repo "shareit/internal/booking/repository"
	"shareit/internal/model"
	"shareit/pkg/sqldb"
)

// CreateBooking inserts a Booking and returns it with item and booker loaded.
func (r *implRepository) CreateBooking(ctx context.Context, opt repo.CreateBookingOptions) (model.Booking, error) {
	id, err := r.db.InsertReturningID(ctx, r.db.InsertInto(tableBookings).Rows(goqu.Record{
		"start_date": sqldb.Timestamp(opt.Start),
		"end_date":   sqldb.Timestamp(opt.End),
		"item_id":    opt.ItemID,
		"booker_id":  opt.BookerID,
		"status":     string(opt.Status),
	}))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateBooking"), err)
		return model.Booking{}, repo.ErrFailedToInsert
	}

	return r.GetOneBooking(ctx, repo.GetOneBookingOptions{ID: id})
}

// GetOneBooking returns zero-value Booking (ID == 0) when not found.
func (r *implRepository) GetOneBooking(ctx context.Context, opt repo.GetOneBookingOptions) (model.Booking, error) {
	ds := r.selectBookings().Where(goqu.I("b.id").Eq(opt.ID)).Limit(1)

	var row bookingRow
	err := r.db.Get(ctx, &row, ds)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Booking{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneBooking"), err)
		return model.Booking{}, repo.ErrFailedToGet
	}
	return row.toModel(), nil
}

// ListBookings returns the bookings matching opt in the requested order.
func (r *implRepository) ListBookings(ctx context.Context, opt repo.ListBookingsOptions) ([]model.Booking, error) {
	ds := r.selectBookings().
		Where(r.buildListConditions(opt)...).
		Order(r.buildOrder(opt.OrderBy)...)
	if opt.Limit > 0 {
		ds = ds.Limit(uint(opt.Limit)).Offset(uint(opt.Offset))
	}

	var rows []bookingRow
	if err := r.db.Select(ctx, &rows, ds); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListBookings"), err)
		return nil, repo.ErrFailedToList
	}

	bookings := make([]model.Booking, len(rows))
	for i, row := range rows {
		bookings[i] = row.toModel()
	}
	return bookings, nil
}

// UpdateBookingStatus sets the status of a Booking.
func (r *implRepository) UpdateBookingStatus(ctx context.Context, id int64, status model.BookingStatus) error {
	_, err := r.db.Exec(ctx, r.db.UpdateTable(tableBookings).
		Set(goqu.Record{"status": string(status)}).
		Where(goqu.C("id").Eq(id)))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateBookingStatus"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
