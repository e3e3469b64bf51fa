// Package sqldbtest opens throwaway migrated databases for repository tests.
package sqldbtest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"shareit/pkg/sqldb"
)

// Open returns a migrated SQLite database living in t's temp dir.
func Open(t testing.TB) *sqldb.DB {
	t.Helper()

	cfg := sqldb.Config{
		Driver: sqldb.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "shareit.db"),
	}
	require.NoError(t, sqldb.Migrate(cfg))

	db, err := sqldb.Open(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

// NopTransactor runs fn directly. Usecase tests use it with fake repositories.
type NopTransactor struct{}

func (NopTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var _ sqldb.Transactor = NopTransactor{}
