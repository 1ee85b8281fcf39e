package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Open connects to the SQLite database at path, verifies the
// connection and migrates the schema.  Foreign keys are switched on per
// connection and the journal runs in WAL mode so a second process
// sharing the file by accident still sees consistent state.
func Open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000", path)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	// SQLite allows a single writer; one pooled connection avoids
	// SQLITE_BUSY churn for this single-operator workload.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the schema when it does not exist yet.  Constraints
// live in the database on purpose: the application pre-checks are
// advisory, the CHECK and UNIQUE clauses here are the authority.
func Migrate(db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS clients (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	first_name TEXT NOT NULL CHECK (trim(first_name) <> ''),
	last_name  TEXT NOT NULL CHECK (trim(last_name) <> '')
);

CREATE TABLE IF NOT EXISTS rooms (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	name     TEXT NOT NULL CHECK (trim(name) <> ''),
	capacity INTEGER NOT NULL CHECK (capacity > 0)
);

CREATE TABLE IF NOT EXISTS reservations (
	folio     INTEGER PRIMARY KEY AUTOINCREMENT,
	client_id INTEGER NOT NULL REFERENCES clients(id),
	room_id   INTEGER NOT NULL REFERENCES rooms(id),
	date      TEXT NOT NULL,
	shift     TEXT NOT NULL CHECK (shift IN ('Matutino', 'Vespertino', 'Nocturno')),
	event     TEXT NOT NULL CHECK (trim(event) <> ''),
	UNIQUE (room_id, date, shift)
);`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
