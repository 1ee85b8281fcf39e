package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"

	"github.com/iliyamo/coworking-room-reservation/internal/model"
)

// ClientRepo provides persistence for clients.  Clients are written
// once at registration and only ever read afterwards.
type ClientRepo struct {
	db *sql.DB
}

// NewClientRepo returns a new ClientRepo bound to the given database.
func NewClientRepo(db *sql.DB) *ClientRepo { return &ClientRepo{db: db} }

// Create inserts a new client and returns its generated ID.  Both
// names are trimmed first; a blank name fails with ErrValidation before
// the statement runs, with the table CHECK constraint as backstop.
func (r *ClientRepo) Create(ctx context.Context, firstName, lastName string) (int64, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" {
		return 0, fmt.Errorf("%w: first name is required", ErrValidation)
	}
	if lastName == "" {
		return 0, fmt.Errorf("%w: last name is required", ErrValidation)
	}
	const q = `INSERT INTO clients (first_name, last_name) VALUES (?, ?)`
	result, err := r.db.ExecContext(ctx, q, firstName, lastName)
	if err != nil {
		if kind, ok := constraintKind(err); ok && kind == sqlite3.ErrConstraintCheck {
			return 0, fmt.Errorf("%w: blank client name", ErrValidation)
		}
		return 0, storageErr("insert client", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, storageErr("insert client", err)
	}
	return id, nil
}

// List returns all clients ordered by (last name, first name)
// ascending.  An empty store yields an empty slice, not nil.
func (r *ClientRepo) List(ctx context.Context) ([]model.Client, error) {
	const q = `SELECT id, first_name, last_name FROM clients ORDER BY last_name, first_name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, storageErr("list clients", err)
	}
	defer rows.Close()
	clients := make([]model.Client, 0)
	for rows.Next() {
		var c model.Client
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName); err != nil {
			return nil, storageErr("scan client", err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list clients", err)
	}
	return clients, nil
}

// Exists reports whether a client with the given ID is registered.
func (r *ClientRepo) Exists(ctx context.Context, id int64) (bool, error) {
	const q = `SELECT 1 FROM clients WHERE id = ?`
	var one int
	err := r.db.QueryRowContext(ctx, q, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, storageErr("check client", err)
	}
	return true, nil
}
