// Package queue defines message payloads exchanged over the message broker.
package queue

// EventQueueName is the durable queue carrying reservation lifecycle events.
const EventQueueName = "reservation.events"

// Event types carried in ReservationEvent.Type.
const (
	TypeBooked    = "booked"
	TypeCancelled = "cancelled"
)

// ReservationEvent is published after a reservation is committed or
// cancelled.  It carries enough display context for downstream
// consumers to log or notify without querying the database.
type ReservationEvent struct {
	Type       string `json:"type"`
	Folio      int64  `json:"folio"`
	ClientID   int64  `json:"client_id"`
	RoomID     int64  `json:"room_id"`
	RoomName   string `json:"room_name,omitempty"`
	Date       string `json:"date"`
	Shift      string `json:"shift"`
	Event      string `json:"event,omitempty"`
	OccurredAt string `json:"occurred_at"`
}
