package sqlstore

import (
	"fmt"

	"shareit/internal/item/repository"
	"shareit/pkg/log"
	"shareit/pkg/sqldb"
)

const (
	tableItems    = "items"
	tableComments = "comments"
)

type implRepository struct {
	db *sqldb.DB
	l  log.Logger
}

// New creates a SQL-backed Repository for items and comments.
func New(db *sqldb.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("item/repository/sqlstore: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("item/repository/sqlstore.%s", method)
}
