package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-travel-booking/internal/logger"
	"github.com/MKhiriev/go-travel-booking/migrations"
)

// DB wraps a *sql.DB together with the goose dialect and the placeholder
// style its driver expects.
type DB struct {
	*sql.DB
	dialect     string
	placeholder sq.PlaceholderFormat
	logger      *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
