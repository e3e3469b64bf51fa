package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/doug-martin/goqu/v9"

	repo "shareit/internal/item/repository"
	"shareit/internal/model"
	"shareit/pkg/sqldb"
)

var itemColumns = []any{"id", "name", "description", "is_available", "owner_id", "request_id"}

// CreateItem inserts a new Item row and returns the created entity.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.Item, error) {
	id, err := r.db.InsertReturningID(ctx, r.db.InsertInto(tableItems).Rows(goqu.Record{
		"name":         opt.Name,
		"description":  opt.Description,
		"is_available": opt.Available,
		"owner_id":     opt.OwnerID,
		"request_id":   opt.RequestID,
	}))
	if err != nil {
		if sqldb.IsForeignKeyViolation(err) {
			return model.Item{}, repo.ErrReferenceMissing
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return model.Item{}, repo.ErrFailedToInsert
	}

	return model.Item{
		ID:          id,
		Name:        opt.Name,
		Description: opt.Description,
		Available:   opt.Available,
		OwnerID:     opt.OwnerID,
		RequestID:   opt.RequestID,
	}, nil
}

// GetOneItem returns zero-value Item (ID == 0) when not found.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (model.Item, error) {
	ds := r.db.From(tableItems).Select(itemColumns...).Where(goqu.C("id").Eq(opt.ID)).Limit(1)

	var item model.Item
	err := r.db.Get(ctx, &item, ds)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return model.Item{}, repo.ErrFailedToGet
	}
	return item, nil
}

// ListItems returns items ordered by id.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]model.Item, error) {
	ds := r.db.From(tableItems).Select(itemColumns...).Order(goqu.C("id").Asc())
	if opt.OwnerID != 0 {
		ds = ds.Where(goqu.C("owner_id").Eq(opt.OwnerID))
	}
	if opt.RequestIDs != nil {
		if len(opt.RequestIDs) == 0 {
			return []model.Item{}, nil
		}
		ds = ds.Where(goqu.C("request_id").In(opt.RequestIDs))
	}
	if opt.Limit > 0 {
		ds = ds.Limit(uint(opt.Limit)).Offset(uint(opt.Offset))
	}

	items := make([]model.Item, 0)
	if err := r.db.Select(ctx, &items, ds); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}
	return items, nil
}

// SearchItems matches name or description, ignoring case, among available items.
func (r *implRepository) SearchItems(ctx context.Context, opt repo.SearchItemsOptions) ([]model.Item, error) {
	pattern := "%" + escapeLike(strings.ToLower(opt.Text)) + "%"
	ds := r.db.From(tableItems).Select(itemColumns...).
		Where(
			goqu.C("is_available").IsTrue(),
			goqu.Or(
				goqu.L(`? LIKE ? ESCAPE '\'`, r.db.Lower("name"), pattern),
				goqu.L(`? LIKE ? ESCAPE '\'`, r.db.Lower("description"), pattern),
			),
		).
		Order(goqu.C("id").Asc())
	if opt.Limit > 0 {
		ds = ds.Limit(uint(opt.Limit)).Offset(uint(opt.Offset))
	}

	items := make([]model.Item, 0)
	if err := r.db.Select(ctx, &items, ds); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SearchItems"), err)
		return nil, repo.ErrFailedToList
	}
	return items, nil
}

// UpdateItem overwrites the mutable fields. Returns zero-value Item when the row is gone.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (model.Item, error) {
	affected, err := r.db.Exec(ctx, r.db.UpdateTable(tableItems).
		Set(goqu.Record{
			"name":         opt.Name,
			"description":  opt.Description,
			"is_available": opt.Available,
		}).
		Where(goqu.C("id").Eq(opt.ID)))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return model.Item{}, repo.ErrFailedToUpdate
	}
	if affected == 0 {
		return model.Item{}, nil
	}
	return r.GetOneItem(ctx, repo.GetOneItemOptions{ID: opt.ID})
}

// DeleteItem removes an Item by ID.
func (r *implRepository) DeleteItem(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, r.db.DeleteFrom(tableItems).Where(goqu.C("id").Eq(id)))
	if err != nil {
		if sqldb.IsForeignKeyViolation(err) {
			return repo.ErrStillReferenced
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
