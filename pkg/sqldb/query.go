package sqldb

import (
	"context"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"
)

// Builder is anything goqu can render to SQL.
type Builder interface {
	ToSQL() (string, []any, error)
}

// From starts a prepared SELECT for the configured dialect.
func (d *DB) From(table ...any) *goqu.SelectDataset {
	return d.dialect.From(table...).Prepared(true)
}

// InsertInto starts a prepared INSERT.
func (d *DB) InsertInto(table any) *goqu.InsertDataset {
	return d.dialect.Insert(table).Prepared(true)
}

// UpdateTable starts a prepared UPDATE.
func (d *DB) UpdateTable(table any) *goqu.UpdateDataset {
	return d.dialect.Update(table).Prepared(true)
}

// DeleteFrom starts a prepared DELETE.
func (d *DB) DeleteFrom(table any) *goqu.DeleteDataset {
	return d.dialect.Delete(table).Prepared(true)
}

// Get scans exactly one row into dest. sql.ErrNoRows is returned unchanged.
func (d *DB) Get(ctx context.Context, dest any, b Builder) error {
	query, args, err := b.ToSQL()
	if err != nil {
		return fmt.Errorf("can't build query: %w", err)
	}
	return sqlx.GetContext(ctx, d.ext(ctx), dest, query, args...)
}

// Select scans all rows into dest, which must be a pointer to a slice.
func (d *DB) Select(ctx context.Context, dest any, b Builder) error {
	query, args, err := b.ToSQL()
	if err != nil {
		return fmt.Errorf("can't build query: %w", err)
	}
	return sqlx.SelectContext(ctx, d.ext(ctx), dest, query, args...)
}

// Exec runs a statement and reports the number of affected rows.
func (d *DB) Exec(ctx context.Context, b Builder) (int64, error) {
	query, args, err := b.ToSQL()
	if err != nil {
		return 0, fmt.Errorf("can't build query: %w", err)
	}
	res, err := d.ext(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// InsertReturningID runs ds and returns the generated primary key. goqu's
// sqlite3 dialect has no RETURNING support, so SQLite falls back to
// LastInsertId.
func (d *DB) InsertReturningID(ctx context.Context, ds *goqu.InsertDataset) (int64, error) {
	if d.driver == DriverPostgres {
		query, args, err := ds.Returning("id").ToSQL()
		if err != nil {
			return 0, fmt.Errorf("can't build query: %w", err)
		}
		var id int64
		if err := sqlx.GetContext(ctx, d.ext(ctx), &id, query, args...); err != nil {
			return 0, err
		}
		return id, nil
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return 0, fmt.Errorf("can't build query: %w", err)
	}
	res, err := d.ext(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Timestamp normalises t to the stored precision: UTC, whole seconds. SQLite
// compares timestamps as text, so every stored or compared value goes through it.
func Timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}
