package model

// Reservation books one room for one client on a single date and shift.
// The triple (RoomID, Date, Shift) is globally unique; the database
// enforces that, not the application.
//
// Fields:
//  Folio    – primary key identifier assigned at creation.
//  ClientID – client the reservation belongs to.
//  RoomID   – room being reserved.
//  Date     – calendar date in the MM-DD-YYYY wire format.
//  Shift    – one of the three shift tokens.
//  Event    – event name, never blank or whitespace-only.
type Reservation struct {
	Folio    int64  `json:"folio"`     // reservations.folio
	ClientID int64  `json:"client_id"` // reservations.client_id
	RoomID   int64  `json:"room_id"`   // reservations.room_id
	Date     string `json:"date"`      // reservations.date
	Shift    Shift  `json:"shift"`     // reservations.shift
	Event    string `json:"event"`     // reservations.event
}
