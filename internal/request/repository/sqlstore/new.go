package sqlstore

import (
	"fmt"

	"shareit/internal/request/repository"
	"shareit/pkg/log"
	"shareit/pkg/sqldb"
)

const tableRequests = "requests"

type implRepository struct {
	db *sqldb.DB
	l  log.Logger
}

// New creates a SQL-backed Repository for item requests.
func New(db *sqldb.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("request/repository/sqlstore: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("request/repository/sqlstore.%s", method)
}
