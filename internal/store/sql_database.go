package store

import (
	"database/sql"

	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/MKhiriev/cuide-me/migrations"
)

// DB wraps a *sql.DB together with the driver-specific error classifier.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	local              bool
}

// Migrate applies the schema matching the database flavour.
func (db *DB) Migrate() error {
	if db.local {
		return migrations.MigrateLocal(db.DB)
	}
	return migrations.Migrate(db.DB)
}
