package model

import "strings"

// Shift is one of the three fixed daily time blocks a room can be
// booked for.  The string values are the literal tokens stored in the
// database and used on the wire.
type Shift string

const (
	ShiftMorning   Shift = "Matutino"   // reservations.shift
	ShiftAfternoon Shift = "Vespertino" // reservations.shift
	ShiftNight     Shift = "Nocturno"   // reservations.shift
)

// Shifts returns the full enumeration in its fixed order
// (morning, afternoon, night).  Callers must not mutate the result.
func Shifts() []Shift {
	return []Shift{ShiftMorning, ShiftAfternoon, ShiftNight}
}

// ParseShift matches raw input against the shift tokens, ignoring case
// and surrounding whitespace.  The second return value reports whether
// the input named a valid shift.
func ParseShift(raw string) (Shift, bool) {
	s := strings.TrimSpace(raw)
	for _, t := range Shifts() {
		if strings.EqualFold(s, string(t)) {
			return t, true
		}
	}
	return "", false
}

// Index returns the position of the shift inside the enumeration, or -1
// for an unknown token.  Used to keep listings in enumeration order
// instead of lexicographic order.
func (s Shift) Index() int {
	for i, t := range Shifts() {
		if s == t {
			return i
		}
	}
	return -1
}
