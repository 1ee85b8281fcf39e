// Package report builds the exportable daily reservation document.  It
// is a pure transformation over the day listing; serialization and
// delivery belong to the caller.
package report

import (
	"github.com/iliyamo/coworking-room-reservation/internal/repository"
)

// Entry is one reservation row of the daily export document.
type Entry struct {
	Folio    int64  `json:"folio"`
	Client   string `json:"client"`
	Room     string `json:"room"`
	Capacity int    `json:"capacity"`
	Shift    string `json:"shift"`
	Event    string `json:"event"`
	Date     string `json:"date"`
}

// Daily maps a day's reservation details onto export entries, keeping
// the listing order (room name, then shift).  The date is repeated on
// every entry so each row is self-describing once exported.
func Daily(date string, details []repository.Detail) []Entry {
	entries := make([]Entry, 0, len(details))
	for _, d := range details {
		entries = append(entries, Entry{
			Folio:    d.Folio,
			Client:   d.ClientName,
			Room:     d.RoomName,
			Capacity: d.Capacity,
			Shift:    string(d.Shift),
			Event:    d.Event,
			Date:     date,
		})
	}
	return entries
}
