// Package repository defines error values shared across the store
// layer.  Handlers and the booking service distinguish failure kinds
// with errors.Is against these sentinels instead of inspecting driver
// errors directly.
package repository

import "errors"

// ErrValidation is returned when a required field is blank or malformed
// (empty names, capacity below one, whitespace-only event names).
// Handlers should translate this into an HTTP 400 response.
var ErrValidation = errors.New("validation failed")

// ErrSlotTaken is returned when a reservation targets a (room, date,
// shift) slot that is already occupied.  The unique index in the
// database is the authority; this sentinel wraps its violation.
// Handlers should translate this into an HTTP 409 response.
var ErrSlotTaken = errors.New("slot already reserved")

// ErrClientNotFound is returned when a referenced client does not exist.
var ErrClientNotFound = errors.New("client not found")

// ErrRoomNotFound is returned when a referenced room does not exist.
var ErrRoomNotFound = errors.New("room not found")

// ErrReservationNotFound is returned when no reservation carries the
// requested folio, or the folio falls outside the caller's selected
// date range.
var ErrReservationNotFound = errors.New("reservation not found")

// ErrStorage wraps any database failure that is not a recognized
// constraint violation.  It is fatal for the current operation but not
// for the process; the operator may retry.
var ErrStorage = errors.New("storage failure")
