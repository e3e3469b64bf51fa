package sqlstore

import (
	"fmt"

	"shareit/internal/booking/repository"
	"shareit/pkg/log"
	"shareit/pkg/sqldb"
)

const tableBookings = "bookings"

type implRepository struct {
	db *sqldb.DB
	l  log.Logger
}

// New creates a SQL-backed Repository for bookings.
func New(db *sqldb.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("booking/repository/sqlstore: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("booking/repository/sqlstore.%s", method)
}
