package sqlstore

import (
	"fmt"

	"shareit/internal/user/repository"
	"shareit/pkg/log"
	"shareit/pkg/sqldb"
)

const tableUsers = "users"

type implRepository struct {
	db *sqldb.DB
	l  log.Logger
}

// New creates a SQL-backed Repository for users.
func New(db *sqldb.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("user/repository/sqlstore: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("user/repository/sqlstore.%s", method)
}
