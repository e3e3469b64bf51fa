package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/doug-martin/goqu/v9"

	"shareit/internal/model"
	repo "shareit/internal/request/repository"
	"shareit/pkg/sqldb"
)

var requestColumns = []any{"id", "description", "requestor_id", "created_at"}

// CreateRequest inserts a new ItemRequest row and returns the created entity.
func (r *implRepository) CreateRequest(ctx context.Context, opt repo.CreateRequestOptions) (model.ItemRequest, error) {
	created := sqldb.Timestamp(opt.CreatedAt)
	id, err := r.db.InsertReturningID(ctx, r.db.InsertInto(tableRequests).Rows(goqu.Record{
		"description":  opt.Description,
		"requestor_id": opt.RequestorID,
		"created_at":   created,
	}))
	if err != nil {
		if sqldb.IsForeignKeyViolation(err) {
			return model.ItemRequest{}, repo.ErrReferenceMissing
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateRequest"), err)
		return model.ItemRequest{}, repo.ErrFailedToInsert
	}

	return model.ItemRequest{
		ID:          id,
		Description: opt.Description,
		RequestorID: opt.RequestorID,
		CreatedAt:   created,
	}, nil
}

// GetOneRequest returns zero-value ItemRequest (ID == 0) when not found.
func (r *implRepository) GetOneRequest(ctx context.Context, opt repo.GetOneRequestOptions) (model.ItemRequest, error) {
	ds := r.db.From(tableRequests).Select(requestColumns...).Where(goqu.C("id").Eq(opt.ID)).Limit(1)

	var req model.ItemRequest
	err := r.db.Get(ctx, &req, ds)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ItemRequest{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneRequest"), err)
		return model.ItemRequest{}, repo.ErrFailedToGet
	}
	req.CreatedAt = req.CreatedAt.UTC()
	return req, nil
}

// ListRequests returns requests newest first.
func (r *implRepository) ListRequests(ctx context.Context, opt repo.ListRequestsOptions) ([]model.ItemRequest, error) {
	ds := r.db.From(tableRequests).Select(requestColumns...).
		Order(goqu.C("created_at").Desc(), goqu.C("id").Desc())
	if opt.RequestorID != 0 {
		ds = ds.Where(goqu.C("requestor_id").Eq(opt.RequestorID))
	}
	if opt.ExcludeRequestorID != 0 {
		ds = ds.Where(goqu.C("requestor_id").Neq(opt.ExcludeRequestorID))
	}
	if opt.Limit > 0 {
		ds = ds.Limit(uint(opt.Limit)).Offset(uint(opt.Offset))
	}

	reqs := make([]model.ItemRequest, 0)
	if err := r.db.Select(ctx, &reqs, ds); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRequests"), err)
		return nil, repo.ErrFailedToList
	}
	for i := range reqs {
		reqs[i].CreatedAt = reqs[i].CreatedAt.UTC()
	}
	return reqs, nil
}
