package store

import (
	"database/sql"
	"errors"
)

// ErrNotFound is returned when a lookup by id or name matches no row.
// The HTTP layer maps it to 404; the moderation engine treats it as an
// already-resolved suggestion.
var ErrNotFound = errors.New("not found")

// Store runs glossary queries against a DBTX. Construct one over *sql.DB
// for plain access or over a transaction inside UnitOfWork.WithinTx for
// atomic multi-step operations.
type Store struct {
	db DBTX
}

// New creates a Store over the given connection or transaction.
func New(conn DBTX) *Store {
	return &Store{db: conn}
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
