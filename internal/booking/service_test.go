package booking_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/iliyamo/coworking-room-reservation/internal/booking"
	"github.com/iliyamo/coworking-room-reservation/internal/database"
	"github.com/iliyamo/coworking-room-reservation/internal/model"
	"github.com/iliyamo/coworking-room-reservation/internal/repository"
	"github.com/iliyamo/coworking-room-reservation/internal/schedule"
)

// The clock is pinned to Wednesday 2024-03-13, making 03-15 the
// earliest bookable date and 03-17 the next rest day (Sunday).
var testNow = time.Date(2024, 3, 13, 10, 30, 0, 0, time.UTC)

type fixture struct {
	svc          *booking.Service
	reservations *repository.ReservationRepo
	clientID     int64
	roomID       int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	clients := repository.NewClientRepo(db)
	rooms := repository.NewRoomRepo(db)
	reservations := repository.NewReservationRepo(db)

	ctx := context.Background()
	clientID, err := clients.Create(ctx, "Ana", "Pérez")
	if err != nil {
		t.Fatalf("seed client: %v", err)
	}
	roomID, err := rooms.Create(ctx, "Sala A", 10)
	if err != nil {
		t.Fatalf("seed room: %v", err)
	}

	svc := booking.NewService(clients, rooms, reservations, func() time.Time { return testNow })
	return &fixture{svc: svc, reservations: reservations, clientID: clientID, roomID: roomID}
}

func date(t *testing.T, text string) time.Time {
	t.Helper()
	d, ok := schedule.ParseDate(text)
	if !ok {
		t.Fatalf("bad test date %q", text)
	}
	return d
}

func (f *fixture) create(t *testing.T, text string, shift model.Shift, event string) *model.Reservation {
	t.Helper()
	res, err := f.svc.Create(context.Background(), booking.CreateInput{
		ClientID: f.clientID,
		RoomID:   f.roomID,
		Date:     date(t, text),
		Shift:    shift,
		Event:    event,
	})
	if err != nil {
		t.Fatalf("create %s %s: %v", text, shift, err)
	}
	return res
}

func TestCreateAndAvailability(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res := f.create(t, "03-20-2024", model.ShiftMorning, "Taller")
	if res.Folio == 0 {
		t.Fatal("expected a folio")
	}

	// A second booking for the same slot is a conflict even for a
	// different client.
	dup, err := f.svc.Create(ctx, booking.CreateInput{
		ClientID: f.clientID,
		RoomID:   f.roomID,
		Date:     date(t, "03-20-2024"),
		Shift:    model.ShiftMorning,
		Event:    "Reunión",
	})
	if !errors.Is(err, repository.ErrSlotTaken) {
		t.Fatalf("duplicate slot = (%v, %v), want ErrSlotTaken", dup, err)
	}

	rooms, err := f.svc.Availability(ctx, date(t, "03-20-2024"))
	if err != nil {
		t.Fatalf("availability: %v", err)
	}
	if len(rooms) != 1 || rooms[0].Name != "Sala A" {
		t.Fatalf("availability rooms = %+v", rooms)
	}
	want := []model.Shift{model.ShiftAfternoon, model.ShiftNight}
	if len(rooms[0].FreeShifts) != len(want) {
		t.Fatalf("free shifts = %v, want %v", rooms[0].FreeShifts, want)
	}
	for i, sh := range want {
		if rooms[0].FreeShifts[i] != sh {
			t.Fatalf("free shifts = %v, want %v", rooms[0].FreeShifts, want)
		}
	}
}

func TestAvailabilityOmitsFullRooms(t *testing.T) {
	f := newFixture(t)

	for _, sh := range model.Shifts() {
		f.create(t, "03-20-2024", sh, "Taller")
	}
	rooms, err := f.svc.Availability(context.Background(), date(t, "03-20-2024"))
	if err != nil {
		t.Fatalf("availability: %v", err)
	}
	if len(rooms) != 0 {
		t.Fatalf("fully booked room still listed: %+v", rooms)
	}

	// Another date is untouched.
	rooms, err = f.svc.Availability(context.Background(), date(t, "03-21-2024"))
	if err != nil {
		t.Fatalf("availability: %v", err)
	}
	if len(rooms) != 1 || len(rooms[0].FreeShifts) != 3 {
		t.Fatalf("free day availability = %+v", rooms)
	}
}

func TestCreateLeadTime(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, text := range []string{"03-13-2024", "03-14-2024"} {
		_, err := f.svc.Create(ctx, booking.CreateInput{
			ClientID: f.clientID, RoomID: f.roomID,
			Date: date(t, text), Shift: model.ShiftMorning, Event: "Taller",
		})
		if !errors.Is(err, booking.ErrLeadTime) {
			t.Errorf("create on %s = %v, want ErrLeadTime", text, err)
		}
	}
	// Exactly two days ahead is the boundary and is allowed.
	f.create(t, "03-15-2024", model.ShiftMorning, "Taller")
}

func TestCreateRestDay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, booking.CreateInput{
		ClientID: f.clientID, RoomID: f.roomID,
		Date: date(t, "03-17-2024"), Shift: model.ShiftMorning, Event: "Taller",
	})
	var restDay *booking.RestDayError
	if !errors.As(err, &restDay) {
		t.Fatalf("rest day create = %v, want RestDayError", err)
	}
	if got := schedule.FormatDate(restDay.Suggested); got != "03-18-2024" {
		t.Fatalf("suggested date = %s, want 03-18-2024", got)
	}
	if !errors.Is(err, booking.ErrPolicy) {
		t.Fatal("RestDayError must match ErrPolicy")
	}

	// The refusal wrote nothing, on either date.
	for _, text := range []string{"03-17-2024", "03-18-2024"} {
		if list, err := f.svc.ListByDate(ctx, date(t, text)); err != nil || len(list) != 0 {
			t.Fatalf("list %s = (%v, %v), want empty", text, list, err)
		}
	}

	// With the substitution accepted the reservation lands on Monday.
	res, err := f.svc.Create(ctx, booking.CreateInput{
		ClientID: f.clientID, RoomID: f.roomID,
		Date: date(t, "03-17-2024"), Shift: model.ShiftMorning, Event: "Taller",
		AcceptNextDay: true,
	})
	if err != nil {
		t.Fatalf("accepted substitution failed: %v", err)
	}
	if res.Date != "03-18-2024" {
		t.Fatalf("reservation date = %s, want 03-18-2024", res.Date)
	}
}

func TestCreateValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, booking.CreateInput{
		ClientID: f.clientID, RoomID: f.roomID,
		Date: date(t, "03-20-2024"), Shift: "Madrugada", Event: "Taller",
	})
	if !errors.Is(err, repository.ErrValidation) {
		t.Errorf("unknown shift = %v, want ErrValidation", err)
	}
	_, err = f.svc.Create(ctx, booking.CreateInput{
		ClientID: f.clientID, RoomID: f.roomID,
		Date: date(t, "03-20-2024"), Shift: model.ShiftMorning, Event: "   ",
	})
	if !errors.Is(err, repository.ErrValidation) {
		t.Errorf("blank event = %v, want ErrValidation", err)
	}
	_, err = f.svc.Create(ctx, booking.CreateInput{
		ClientID: f.clientID + 99, RoomID: f.roomID,
		Date: date(t, "03-20-2024"), Shift: model.ShiftMorning, Event: "Taller",
	})
	if !errors.Is(err, repository.ErrClientNotFound) {
		t.Errorf("missing client = %v, want ErrClientNotFound", err)
	}
	_, err = f.svc.Create(ctx, booking.CreateInput{
		ClientID: f.clientID, RoomID: f.roomID + 99,
		Date: date(t, "03-20-2024"), Shift: model.ShiftMorning, Event: "Taller",
	})
	if !errors.Is(err, repository.ErrRoomNotFound) {
		t.Errorf("missing room = %v, want ErrRoomNotFound", err)
	}
}

func TestListInRangeValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.ListInRange(context.Background(), date(t, "03-25-2024"), date(t, "03-20-2024"))
	if !errors.Is(err, booking.ErrInvalidRange) {
		t.Fatalf("inverted range = %v, want ErrInvalidRange", err)
	}
}

func TestEditEvent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res := f.create(t, "03-20-2024", model.ShiftMorning, "Taller")
	start, end := date(t, "03-18-2024"), date(t, "03-22-2024")

	if err := f.svc.EditEvent(ctx, start, end, res.Folio, "  "); !errors.Is(err, repository.ErrValidation) {
		t.Errorf("blank event = %v, want ErrValidation", err)
	}
	if err := f.svc.EditEvent(ctx, start, end, res.Folio, "Curso de Go"); err != nil {
		t.Fatalf("edit: %v", err)
	}
	got, err := f.reservations.GetByFolio(ctx, res.Folio)
	if err != nil || got.Event != "Curso de Go" {
		t.Fatalf("event not renamed: %+v, %v", got, err)
	}

	// A folio outside the selected range reads as not found.
	outside := f.svc.EditEvent(ctx, date(t, "04-01-2024"), date(t, "04-30-2024"), res.Folio, "Curso")
	if !errors.Is(outside, repository.ErrReservationNotFound) {
		t.Errorf("out-of-range folio = %v, want ErrReservationNotFound", outside)
	}
	if err := f.svc.EditEvent(ctx, end, start, res.Folio, "Curso"); !errors.Is(err, booking.ErrInvalidRange) {
		t.Errorf("inverted range = %v, want ErrInvalidRange", err)
	}
}

func TestEditHasNoLeadTimeRestriction(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Seed a reservation dated tomorrow directly through the store;
	// the create policy would refuse it, but edits must still work.
	res := &model.Reservation{ClientID: f.clientID, RoomID: f.roomID, Date: "03-14-2024", Shift: model.ShiftMorning, Event: "Taller"}
	if err := f.reservations.Create(ctx, res); err != nil {
		t.Fatalf("seed reservation: %v", err)
	}
	err := f.svc.EditEvent(ctx, date(t, "03-14-2024"), date(t, "03-14-2024"), res.Folio, "Cambio de último minuto")
	if err != nil {
		t.Fatalf("edit inside the lead-time window must succeed: %v", err)
	}
}

func TestCancel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res := f.create(t, "03-20-2024", model.ShiftMorning, "Taller")
	start, end := date(t, "03-18-2024"), date(t, "03-22-2024")

	cancelled, err := f.svc.Cancel(ctx, start, end, res.Folio)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if cancelled.Folio != res.Folio {
		t.Fatalf("cancelled folio = %d, want %d", cancelled.Folio, res.Folio)
	}

	// The slot is free again.
	f.create(t, "03-20-2024", model.ShiftMorning, "Taller de nuevo")

	if _, err := f.svc.Cancel(ctx, start, end, res.Folio+99); !errors.Is(err, repository.ErrReservationNotFound) {
		t.Errorf("missing folio = %v, want ErrReservationNotFound", err)
	}
}

func TestCancelInsideWindowRefused(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Reservation dated tomorrow, seeded directly through the store.
	res := &model.Reservation{ClientID: f.clientID, RoomID: f.roomID, Date: "03-14-2024", Shift: model.ShiftMorning, Event: "Taller"}
	if err := f.reservations.Create(ctx, res); err != nil {
		t.Fatalf("seed reservation: %v", err)
	}

	_, err := f.svc.Cancel(ctx, date(t, "03-14-2024"), date(t, "03-14-2024"), res.Folio)
	if !errors.Is(err, booking.ErrCancelWindow) {
		t.Fatalf("cancel inside window = %v, want ErrCancelWindow", err)
	}
	// The reservation is untouched.
	if _, err := f.reservations.GetByFolio(ctx, res.Folio); err != nil {
		t.Fatalf("reservation was deleted despite refusal: %v", err)
	}

	// Exactly at the boundary (two days out) cancellation is allowed.
	boundary := &model.Reservation{ClientID: f.clientID, RoomID: f.roomID, Date: "03-15-2024", Shift: model.ShiftMorning, Event: "Taller"}
	if err := f.reservations.Create(ctx, boundary); err != nil {
		t.Fatalf("seed boundary reservation: %v", err)
	}
	if _, err := f.svc.Cancel(ctx, date(t, "03-15-2024"), date(t, "03-15-2024"), boundary.Folio); err != nil {
		t.Fatalf("boundary cancel refused: %v", err)
	}
}

func TestListByDateAndRange(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.create(t, "03-20-2024", model.ShiftMorning, "Taller")
	f.create(t, "03-21-2024", model.ShiftMorning, "Curso")

	day, err := f.svc.ListByDate(ctx, date(t, "03-20-2024"))
	if err != nil {
		t.Fatalf("list by date: %v", err)
	}
	if len(day) != 1 || day[0].Event != "Taller" {
		t.Fatalf("day view = %+v", day)
	}

	all, err := f.svc.ListInRange(ctx, date(t, "03-20-2024"), date(t, "03-21-2024"))
	if err != nil {
		t.Fatalf("list in range: %v", err)
	}
	if len(all) != 2 || all[0].Date != "03-20-2024" || all[1].Date != "03-21-2024" {
		t.Fatalf("range view = %+v", all)
	}
}
