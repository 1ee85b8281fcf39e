package model

// Room is a bookable space.  Rooms are registered once and immutable
// thereafter.
//
// Fields:
//  ID       – primary key identifier.
//  Name     – room name, non-blank.
//  Capacity – maximum occupancy, always greater than zero.
type Room struct {
	ID       int64  `json:"id"`       // rooms.id
	Name     string `json:"name"`     // rooms.name
	Capacity int    `json:"capacity"` // rooms.capacity
}
