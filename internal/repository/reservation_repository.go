package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/iliyamo/coworking-room-reservation/internal/model"
	"github.com/iliyamo/coworking-room-reservation/internal/schedule"
)

// ReservationRepo provides CRUD operations for reservations.  The
// (room_id, date, shift) unique index in the database is the sole
// authority on slot conflicts: Create never pre-checks the slot, it
// inserts and translates the constraint violation.  That keeps the
// rejection race-free even when another process shares the file.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// Detail is a reservation joined with the client and room display
// fields the listings need.  ClientName is rendered "Last, First".
type Detail struct {
	Folio      int64       `json:"folio"`
	ClientName string      `json:"client"`
	RoomName   string      `json:"room"`
	Capacity   int         `json:"capacity"`
	Date       string      `json:"date"`
	Shift      model.Shift `json:"shift"`
	Event      string      `json:"event"`
}

// Create inserts a reservation and populates the generated folio on the
// provided record.  The insert is a single atomic statement; a unique
// violation maps to ErrSlotTaken and a foreign key violation to the
// missing entity's not-found sentinel.
func (r *ReservationRepo) Create(ctx context.Context, res *model.Reservation) error {
	res.Event = strings.TrimSpace(res.Event)
	if res.Event == "" {
		return fmt.Errorf("%w: event name is required", ErrValidation)
	}
	const q = `INSERT INTO reservations (client_id, room_id, date, shift, event) VALUES (?, ?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, q, res.ClientID, res.RoomID, res.Date, string(res.Shift), res.Event)
	if err != nil {
		if kind, ok := constraintKind(err); ok {
			switch kind {
			case sqlite3.ErrConstraintUnique:
				return fmt.Errorf("%w: %s %s %s", ErrSlotTaken, res.Date, res.Shift, err)
			case sqlite3.ErrConstraintForeignKey:
				return r.missingReference(ctx, res)
			case sqlite3.ErrConstraintCheck:
				return fmt.Errorf("%w: invalid reservation attributes", ErrValidation)
			}
		}
		return storageErr("insert reservation", err)
	}
	folio, err := result.LastInsertId()
	if err != nil {
		return storageErr("insert reservation", err)
	}
	res.Folio = folio
	return nil
}

// missingReference resolves a foreign key violation to the entity that
// is actually absent.
func (r *ReservationRepo) missingReference(ctx context.Context, res *model.Reservation) error {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM clients WHERE id = ?`, res.ClientID).Scan(&one)
	if err == sql.ErrNoRows {
		return fmt.Errorf("%w: id %d", ErrClientNotFound, res.ClientID)
	}
	if err != nil {
		return storageErr("resolve reference", err)
	}
	return fmt.Errorf("%w: id %d", ErrRoomNotFound, res.RoomID)
}

// ReservedShifts returns, for the given wire-format date, the set of
// occupied shifts per room ID.  Rooms without reservations that day are
// absent from the map.
func (r *ReservationRepo) ReservedShifts(ctx context.Context, date string) (map[int64][]model.Shift, error) {
	const q = `SELECT room_id, shift FROM reservations WHERE date = ?`
	rows, err := r.db.QueryContext(ctx, q, date)
	if err != nil {
		return nil, storageErr("query reserved shifts", err)
	}
	defer rows.Close()
	occupied := make(map[int64][]model.Shift)
	for rows.Next() {
		var roomID int64
		var shift string
		if err := rows.Scan(&roomID, &shift); err != nil {
			return nil, storageErr("scan reserved shift", err)
		}
		occupied[roomID] = append(occupied[roomID], model.Shift(shift))
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("query reserved shifts", err)
	}
	return occupied, nil
}

// FindByDate returns the reservations for one date joined with client
// and room fields, ordered by room name and then by shift in
// enumeration order (morning, afternoon, night).
func (r *ReservationRepo) FindByDate(ctx context.Context, date string) ([]Detail, error) {
	const q = `SELECT rv.folio, c.last_name || ', ' || c.first_name, rm.name, rm.capacity, rv.date, rv.shift, rv.event
			   FROM reservations rv
			   JOIN clients c ON c.id = rv.client_id
			   JOIN rooms rm ON rm.id = rv.room_id
			   WHERE rv.date = ?
			   ORDER BY rm.name,
						CASE rv.shift WHEN 'Matutino' THEN 0 WHEN 'Vespertino' THEN 1 ELSE 2 END`
	rows, err := r.db.QueryContext(ctx, q, date)
	if err != nil {
		return nil, storageErr("query reservations by date", err)
	}
	defer rows.Close()
	return scanDetails(rows)
}

// FindInDateRange returns the reservations whose date falls inside the
// inclusive [start, end] range, ordered by date ascending and folio as
// tie-breaker.  Dates are persisted in the MM-DD-YYYY wire format, so
// the filter and ordering run on parsed dates in Go; comparing the
// stored text would order lexicographically and break across year
// boundaries.
func (r *ReservationRepo) FindInDateRange(ctx context.Context, start, end time.Time) ([]Detail, error) {
	const q = `SELECT rv.folio, c.last_name || ', ' || c.first_name, rm.name, rm.capacity, rv.date, rv.shift, rv.event
			   FROM reservations rv
			   JOIN clients c ON c.id = rv.client_id
			   JOIN rooms rm ON rm.id = rv.room_id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, storageErr("query reservations in range", err)
	}
	defer rows.Close()
	all, err := scanDetails(rows)
	if err != nil {
		return nil, err
	}
	start = schedule.DateOnly(start)
	end = schedule.DateOnly(end)
	type dated struct {
		d Detail
		t time.Time
	}
	picked := make([]dated, 0, len(all))
	for _, d := range all {
		t, ok := schedule.ParseDate(d.Date)
		if !ok {
			return nil, fmt.Errorf("%w: stored date %q is malformed", ErrStorage, d.Date)
		}
		if t.Before(start) || t.After(end) {
			continue
		}
		picked = append(picked, dated{d: d, t: t})
	}
	sort.SliceStable(picked, func(i, j int) bool {
		if !picked[i].t.Equal(picked[j].t) {
			return picked[i].t.Before(picked[j].t)
		}
		return picked[i].d.Folio < picked[j].d.Folio
	})
	details := make([]Detail, 0, len(picked))
	for _, p := range picked {
		details = append(details, p.d)
	}
	return details, nil
}

// GetByFolio loads a single reservation.  It returns
// ErrReservationNotFound when the folio does not exist.
func (r *ReservationRepo) GetByFolio(ctx context.Context, folio int64) (*model.Reservation, error) {
	const q = `SELECT folio, client_id, room_id, date, shift, event FROM reservations WHERE folio = ?`
	var res model.Reservation
	var shift string
	err := r.db.QueryRowContext(ctx, q, folio).Scan(&res.Folio, &res.ClientID, &res.RoomID, &res.Date, &shift, &res.Event)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: folio %d", ErrReservationNotFound, folio)
	}
	if err != nil {
		return nil, storageErr("get reservation", err)
	}
	res.Shift = model.Shift(shift)
	return &res, nil
}

// UpdateEvent replaces the event name of the reservation with the given
// folio.  The name is trimmed; a blank name fails with ErrValidation
// and an absent folio with ErrReservationNotFound.
func (r *ReservationRepo) UpdateEvent(ctx context.Context, folio int64, event string) error {
	event = strings.TrimSpace(event)
	if event == "" {
		return fmt.Errorf("%w: event name is required", ErrValidation)
	}
	const q = `UPDATE reservations SET event = ? WHERE folio = ?`
	result, err := r.db.ExecContext(ctx, q, event, folio)
	if err != nil {
		if kind, ok := constraintKind(err); ok && kind == sqlite3.ErrConstraintCheck {
			return fmt.Errorf("%w: event name is required", ErrValidation)
		}
		return storageErr("update reservation event", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return storageErr("update reservation event", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: folio %d", ErrReservationNotFound, folio)
	}
	return nil
}

// Delete removes the reservation with the given folio, immediately
// freeing its (room, date, shift) slot.  An absent folio fails with
// ErrReservationNotFound.
func (r *ReservationRepo) Delete(ctx context.Context, folio int64) error {
	const q = `DELETE FROM reservations WHERE folio = ?`
	result, err := r.db.ExecContext(ctx, q, folio)
	if err != nil {
		return storageErr("delete reservation", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return storageErr("delete reservation", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: folio %d", ErrReservationNotFound, folio)
	}
	return nil
}

func scanDetails(rows *sql.Rows) ([]Detail, error) {
	details := make([]Detail, 0)
	for rows.Next() {
		var d Detail
		var shift string
		if err := rows.Scan(&d.Folio, &d.ClientName, &d.RoomName, &d.Capacity, &d.Date, &shift, &d.Event); err != nil {
			return nil, storageErr("scan reservation", err)
		}
		d.Shift = model.Shift(shift)
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("scan reservations", err)
	}
	return details, nil
}
