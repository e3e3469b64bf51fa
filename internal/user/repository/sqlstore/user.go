package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/doug-martin/goqu/v9"

	"shareit/internal/model"
	repo "shareit/internal/user/repository"
	"shareit/pkg/sqldb"
)

var userColumns = []any{"id", "name", "email"}

// CreateUser inserts a new User row and returns the created entity.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	id, err := r.db.InsertReturningID(ctx, r.db.InsertInto(tableUsers).Rows(goqu.Record{
		"name":  opt.Name,
		"email": opt.Email,
	}))
	if err != nil {
		if sqldb.IsUniqueViolation(err) {
			return model.User{}, repo.ErrDuplicateEmail
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return model.User{}, repo.ErrFailedToInsert
	}
	return model.User{ID: id, Name: opt.Name, Email: opt.Email}, nil
}

// GetOneUser retrieves a single User by the provided filters (AND condition).
// Returns zero-value User (ID == 0) when not found.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	ds := r.db.From(tableUsers).Select(userColumns...).Where(r.buildGetOneConditions(opt)...).Limit(1)

	var u model.User
	err := r.db.Get(ctx, &u, ds)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return u, nil
}

// ListUsers returns users ordered by id.
func (r *implRepository) ListUsers(ctx context.Context, opt repo.ListUsersOptions) ([]model.User, error) {
	ds := r.db.From(tableUsers).Select(userColumns...).Order(goqu.C("id").Asc())
	if opt.Limit > 0 {
		ds = ds.Limit(uint(opt.Limit)).Offset(uint(opt.Offset))
	}

	users := make([]model.User, 0)
	if err := r.db.Select(ctx, &users, ds); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListUsers"), err)
		return nil, repo.ErrFailedToList
	}
	return users, nil
}

// UpdateUser overwrites name and email. Returns zero-value User when the row is gone.
func (r *implRepository) UpdateUser(ctx context.Context, opt repo.UpdateUserOptions) (model.User, error) {
	affected, err := r.db.Exec(ctx, r.db.UpdateTable(tableUsers).
		Set(goqu.Record{"name": opt.Name, "email": opt.Email}).
		Where(goqu.C("id").Eq(opt.ID)))
	if err != nil {
		if sqldb.IsUniqueViolation(err) {
			return model.User{}, repo.ErrDuplicateEmail
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateUser"), err)
		return model.User{}, repo.ErrFailedToUpdate
	}
	if affected == 0 {
		return model.User{}, nil
	}
	return model.User{ID: opt.ID, Name: opt.Name, Email: opt.Email}, nil
}

// DeleteUser removes a User by ID.
func (r *implRepository) DeleteUser(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, r.db.DeleteFrom(tableUsers).Where(goqu.C("id").Eq(id)))
	if err != nil {
		if sqldb.IsForeignKeyViolation(err) {
			return repo.ErrStillReferenced
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteUser"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func (r *implRepository) buildGetOneConditions(opt repo.GetOneUserOptions) []goqu.Expression {
	var conds []goqu.Expression
	if opt.ID != 0 {
		conds = append(conds, goqu.C("id").Eq(opt.ID))
	}
	if opt.Email != "" {
		conds = append(conds, goqu.C("email").Eq(opt.Email))
	}
	return conds
}
