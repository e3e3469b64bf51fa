package sqlstore

import (
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	repo "shareit/internal/booking/repository"
	"shareit/internal/model"
	"shareit/pkg/sqldb"
)

// bookingRow is one booking joined with its item and booker.
type bookingRow struct {
	ID              int64     `db:"id"`
	Start           time.Time `db:"start_date"`
	End             time.Time `db:"end_date"`
	Status          string    `db:"status"`
	ItemID          int64     `db:"item_id"`
	ItemName        string    `db:"item_name"`
	ItemDescription string    `db:"item_description"`
	ItemAvailable   bool      `db:"item_is_available"`
	ItemOwnerID     int64     `db:"item_owner_id"`
	ItemRequestID   *int64    `db:"item_request_id"`
	BookerID        int64     `db:"booker_id"`
	BookerName      string    `db:"booker_name"`
	BookerEmail     string    `db:"booker_email"`
}

func (row bookingRow) toModel() model.Booking {
	return model.Booking{
		ID:     row.ID,
		Start:  row.Start.UTC(),
		End:    row.End.UTC(),
		Status: model.BookingStatus(row.Status),
		Item: model.Item{
			ID:          row.ItemID,
			Name:        row.ItemName,
			Description: row.ItemDescription,
			Available:   row.ItemAvailable,
			OwnerID:     row.ItemOwnerID,
			RequestID:   row.ItemRequestID,
		},
		Booker: model.User{
			ID:    row.BookerID,
			Name:  row.BookerName,
			Email: row.BookerEmail,
		},
	}
}

func (r *implRepository) selectBookings() *goqu.SelectDataset {
	return r.db.From(goqu.T(tableBookings).As("b")).
		Join(goqu.T("items").As("i"), goqu.On(goqu.I("i.id").Eq(goqu.I("b.item_id")))).
		Join(goqu.T("users").As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("b.booker_id")))).
		Select(
			goqu.I("b.id").As("id"),
			goqu.I("b.start_date").As("start_date"),
			goqu.I("b.end_date").As("end_date"),
			goqu.I("b.status").As("status"),
			goqu.I("i.id").As("item_id"),
			goqu.I("i.name").As("item_name"),
			goqu.I("i.description").As("item_description"),
			goqu.I("i.is_available").As("item_is_available"),
			goqu.I("i.owner_id").As("item_owner_id"),
			goqu.I("i.request_id").As("item_request_id"),
			goqu.I("u.id").As("booker_id"),
			goqu.I("u.name").As("booker_name"),
			goqu.I("u.email").As("booker_email"),
		)
}

func (r *implRepository) buildListConditions(opt repo.ListBookingsOptions) []goqu.Expression {
	var conds []goqu.Expression
	if opt.BookerID != 0 {
		conds = append(conds, goqu.I("b.booker_id").Eq(opt.BookerID))
	}
	if opt.OwnerID != 0 {
		conds = append(conds, goqu.I("i.owner_id").Eq(opt.OwnerID))
	}
	if opt.ItemID != 0 {
		conds = append(conds, goqu.I("b.item_id").Eq(opt.ItemID))
	}
	if opt.Status != "" {
		conds = append(conds, goqu.I("b.status").Eq(string(opt.Status)))
	}
	if !opt.StartBefore.IsZero() {
		conds = append(conds, goqu.I("b.start_date").Lt(sqldb.Timestamp(opt.StartBefore)))
	}
	if !opt.StartAfter.IsZero() {
		conds = append(conds, goqu.I("b.start_date").Gt(sqldb.Timestamp(opt.StartAfter)))
	}
	if !opt.EndBefore.IsZero() {
		conds = append(conds, goqu.I("b.end_date").Lt(sqldb.Timestamp(opt.EndBefore)))
	}
	if !opt.EndAfter.IsZero() {
		conds = append(conds, goqu.I("b.end_date").Gt(sqldb.Timestamp(opt.EndAfter)))
	}
	return conds
}

// buildOrder breaks ties on id so that pages are stable.
func (r *implRepository) buildOrder(order repo.Order) []exp.OrderedExpression {
	switch order {
	case repo.OrderByStartDesc:
		return []exp.OrderedExpression{goqu.I("b.start_date").Desc(), goqu.I("b.id").Desc()}
	case repo.OrderByStartAsc:
		return []exp.OrderedExpression{goqu.I("b.start_date").Asc(), goqu.I("b.id").Asc()}
	case repo.OrderByEndDesc:
		return []exp.OrderedExpression{goqu.I("b.end_date").Desc(), goqu.I("b.id").Desc()}
	default:
		return []exp.OrderedExpression{goqu.I("b.id").Asc()}
	}
}
