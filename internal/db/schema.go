package db

import (
	"database/sql"
	"fmt"

	"github.com/erazemk/trgovina/internal/model"
)

// Both resource tables share one column set; the DDL differs per driver
// only in the id and blob column types.

const sqliteTable = `
CREATE TABLE IF NOT EXISTS %s (
    id          INTEGER PRIMARY KEY,
    name        TEXT NOT NULL,
    description TEXT,
    price       REAL NOT NULL,
    quantity    INTEGER NOT NULL,
    image       BLOB,
    mimetype    TEXT
);`

const postgresTable = `
CREATE TABLE IF NOT EXISTS %s (
    id          BIGSERIAL PRIMARY KEY,
    name        TEXT NOT NULL,
    description TEXT,
    price       DOUBLE PRECISION NOT NULL,
    quantity    BIGINT NOT NULL,
    image       BYTEA,
    mimetype    TEXT
);`

// EnsureSchema creates the resource tables if they don't already exist.
// Safe to call on every startup.
func EnsureSchema(db *sql.DB, driver string) error {
	ddl := sqliteTable
	if driver == DriverPostgres {
		ddl = postgresTable
	}

	for _, table := range model.Tables {
		if _, err := db.Exec(fmt.Sprintf(ddl, table)); err != nil {
			return fmt.Errorf("creating table %s: %w", table, err)
		}
	}
	return nil
}
