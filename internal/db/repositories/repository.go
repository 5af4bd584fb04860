package repositories

import (
	"github.com/go-pg/pg/v10"
)

type repository struct {
	db *pg.DB
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation, the signal every compare-and-swap insert in this package
// relies on.
func isUniqueViolation(err error) bool {
	pgErr, ok := err.(pg.Error)
	return ok && pgErr.IntegrityViolation()
}
