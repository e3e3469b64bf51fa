// Package sqldb owns the relational connection: opening it for either
// PostgreSQL or embedded SQLite, building dialect-correct queries with goqu,
// executing them through sqlx, and carrying the current transaction in the
// request context.
package sqldb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"  // dialect registration
	_ "github.com/jackc/pgx/v5/stdlib"                  // "pgx" database/sql driver
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // "sqlite" database/sql driver
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var ErrUnknownDriver = errors.New("unknown database driver")

// Config describes how to reach the database.
type Config struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DB is the shared handle used by every repository.
type DB struct {
	db      *sqlx.DB
	driver  string
	dialect goqu.DialectWrapper
}

// Open connects and pings the database described by cfg.
func Open(ctx context.Context, cfg Config) (*DB, error) {
	var driverName, dsn, dialect string
	switch cfg.Driver {
	case DriverPostgres:
		driverName, dsn, dialect = "pgx", cfg.DSN, "postgres"
	case DriverSQLite:
		driverName, dsn, dialect = "sqlite", sqliteDSN(cfg.DSN), "sqlite3"
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}

	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	if cfg.Driver == DriverSQLite {
		// SQLite serialises writers; a single connection keeps transactions from
		// tripping over SQLITE_BUSY.
		db.SetMaxOpenConns(1)
	} else {
		if cfg.MaxOpenConns > 0 {
			db.SetMaxOpenConns(cfg.MaxOpenConns)
		}
		if cfg.MaxIdleConns > 0 {
			db.SetMaxIdleConns(cfg.MaxIdleConns)
		}
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("can't ping database: %w", err)
	}

	return &DB{db: db, driver: cfg.Driver, dialect: goqu.Dialect(dialect)}, nil
}

// Close releases the pool.
func (d *DB) Close() error {
	return d.db.Close()
}

// Driver reports which backend is in use.
func (d *DB) Driver() string {
	return d.driver
}

// PingContext checks the connection, used by readiness probes.
func (d *DB) PingContext(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

func sqliteDSN(path string) string {
	return "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite"
}
