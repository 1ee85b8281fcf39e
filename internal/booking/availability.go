package booking

import (
	"context"
	"time"

	"github.com/iliyamo/coworking-room-reservation/internal/model"
	"github.com/iliyamo/coworking-room-reservation/internal/schedule"
)

// RoomAvailability lists the shifts still free for one room on a given
// date.  FreeShifts preserves the enumeration order.
type RoomAvailability struct {
	RoomID     int64         `json:"room_id"`
	Name       string        `json:"name"`
	Capacity   int           `json:"capacity"`
	FreeShifts []model.Shift `json:"free_shifts"`
}

// Availability computes the free shift set per room for the given date.
// Rooms are ordered by name; rooms with no free shift left are omitted.
// The result is a snapshot and may go stale under a concurrent writer;
// the store's unique index remains the authority at create time.
func (s *Service) Availability(ctx context.Context, date time.Time) ([]RoomAvailability, error) {
	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return nil, err
	}
	occupied, err := s.reservations.ReservedShifts(ctx, schedule.FormatDate(schedule.DateOnly(date)))
	if err != nil {
		return nil, err
	}
	out := make([]RoomAvailability, 0, len(rooms))
	for _, rm := range rooms {
		taken := make(map[model.Shift]bool, len(occupied[rm.ID]))
		for _, sh := range occupied[rm.ID] {
			taken[sh] = true
		}
		free := make([]model.Shift, 0, len(model.Shifts()))
		for _, sh := range model.Shifts() {
			if !taken[sh] {
				free = append(free, sh)
			}
		}
		if len(free) == 0 {
			continue
		}
		out = append(out, RoomAvailability{
			RoomID:     rm.ID,
			Name:       rm.Name,
			Capacity:   rm.Capacity,
			FreeShifts: free,
		})
	}
	return out, nil
}
