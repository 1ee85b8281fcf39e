package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"

	"github.com/iliyamo/coworking-room-reservation/internal/model"
)

// RoomRepo provides persistence for bookable rooms.  Rooms are
// registered once and immutable afterwards.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo returns a new RoomRepo bound to the given database.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

// Create inserts a new room and returns its generated ID.  The name is
// trimmed; a blank name or a capacity below one fails with
// ErrValidation, with the table CHECK constraints as backstop.
func (r *RoomRepo) Create(ctx context.Context, name string, capacity int) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("%w: room name is required", ErrValidation)
	}
	if capacity <= 0 {
		return 0, fmt.Errorf("%w: capacity must be greater than zero", ErrValidation)
	}
	const q = `INSERT INTO rooms (name, capacity) VALUES (?, ?)`
	result, err := r.db.ExecContext(ctx, q, name, capacity)
	if err != nil {
		if kind, ok := constraintKind(err); ok && kind == sqlite3.ErrConstraintCheck {
			return 0, fmt.Errorf("%w: invalid room attributes", ErrValidation)
		}
		return 0, storageErr("insert room", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, storageErr("insert room", err)
	}
	return id, nil
}

// List returns all rooms ordered by name ascending.
func (r *RoomRepo) List(ctx context.Context) ([]model.Room, error) {
	const q = `SELECT id, name, capacity FROM rooms ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, storageErr("list rooms", err)
	}
	defer rows.Close()
	rooms := make([]model.Room, 0)
	for rows.Next() {
		var rm model.Room
		if err := rows.Scan(&rm.ID, &rm.Name, &rm.Capacity); err != nil {
			return nil, storageErr("scan room", err)
		}
		rooms = append(rooms, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list rooms", err)
	}
	return rooms, nil
}

// Get loads a single room.  It returns ErrRoomNotFound when the ID is
// not registered.
func (r *RoomRepo) Get(ctx context.Context, id int64) (*model.Room, error) {
	const q = `SELECT id, name, capacity FROM rooms WHERE id = ?`
	var rm model.Room
	err := r.db.QueryRowContext(ctx, q, id).Scan(&rm.ID, &rm.Name, &rm.Capacity)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: id %d", ErrRoomNotFound, id)
	}
	if err != nil {
		return nil, storageErr("get room", err)
	}
	return &rm, nil
}

// Exists reports whether a room with the given ID is registered.
func (r *RoomRepo) Exists(ctx context.Context, id int64) (bool, error) {
	const q = `SELECT 1 FROM rooms WHERE id = ?`
	var one int
	err := r.db.QueryRowContext(ctx, q, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, storageErr("check room", err)
	}
	return true, nil
}
