package store

import (
	"database/sql"

	"github.com/MKhiriev/go-protocol-catalog/internal/logger"
	"github.com/MKhiriev/go-protocol-catalog/migrations"
)

const (
	driverPostgres = "pgx"
	driverSQLite   = "sqlite3"
)

// DB wraps a connection pool together with the driver it was opened with.
type DB struct {
	*sql.DB
	driver string
	logger *logger.Logger
}

// Migrate applies the schema that belongs to the connection's driver.
func (db *DB) Migrate() error {
	if db.driver == driverSQLite {
		return migrations.MigrateClient(db.DB)
	}

	return migrations.Migrate(db.DB)
}
