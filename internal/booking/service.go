// Package booking implements the reservation lifecycle: it validates
// create, edit and cancel operations against the date policy and the
// store's constraints.  It is the only package that calls the
// reservation mutators.
package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/iliyamo/coworking-room-reservation/internal/model"
	"github.com/iliyamo/coworking-room-reservation/internal/repository"
	"github.com/iliyamo/coworking-room-reservation/internal/schedule"
)

// Service orchestrates reservation state transitions over the store
// repositories.  The clock is injected so tests can pin "now"; passing
// nil uses time.Now.
type Service struct {
	clients      *repository.ClientRepo
	rooms        *repository.RoomRepo
	reservations *repository.ReservationRepo
	now          func() time.Time
}

// NewService constructs a Service and panics if any repository is nil.
func NewService(clients *repository.ClientRepo, rooms *repository.RoomRepo, reservations *repository.ReservationRepo, now func() time.Time) *Service {
	if clients == nil || rooms == nil || reservations == nil {
		panic("nil repository passed to NewService")
	}
	if now == nil {
		now = time.Now
	}
	return &Service{
		clients:      clients,
		rooms:        rooms,
		reservations: reservations,
		now:          now,
	}
}

// CreateInput carries a validated create request.  Date is a parsed
// civil date; AcceptNextDay marks that the caller explicitly accepted
// moving a rest-day date to the following day.
type CreateInput struct {
	ClientID      int64
	RoomID        int64
	Date          time.Time
	Shift         model.Shift
	Event         string
	AcceptNextDay bool
}

// Create validates the request against the date policy and the current
// availability, then commits it through the store.  The availability
// check is advisory; the store's unique index makes the final call, so
// a race with a concurrent writer surfaces as ErrSlotTaken and is not
// retried — the slot is genuinely taken.
func (s *Service) Create(ctx context.Context, in CreateInput) (*model.Reservation, error) {
	today := schedule.DateOnly(s.now())
	date := schedule.DateOnly(in.Date)
	if date.Before(schedule.EarliestAllowedDate(today)) {
		return nil, ErrLeadTime
	}
	if schedule.IsRestDay(date) {
		if !in.AcceptNextDay {
			return nil, &RestDayError{Suggested: schedule.NextDayIfRestDay(date)}
		}
		date = schedule.NextDayIfRestDay(date)
	}
	if in.Shift.Index() < 0 {
		return nil, fmt.Errorf("%w: unknown shift %q", repository.ErrValidation, in.Shift)
	}
	if strings.TrimSpace(in.Event) == "" {
		return nil, fmt.Errorf("%w: event name is required", repository.ErrValidation)
	}
	if ok, err := s.clients.Exists(ctx, in.ClientID); err != nil {
		return nil, err
	} else if !ok {
		return nil, fmt.Errorf("%w: id %d", repository.ErrClientNotFound, in.ClientID)
	}
	if ok, err := s.rooms.Exists(ctx, in.RoomID); err != nil {
		return nil, err
	} else if !ok {
		return nil, fmt.Errorf("%w: id %d", repository.ErrRoomNotFound, in.RoomID)
	}

	res := &model.Reservation{
		ClientID: in.ClientID,
		RoomID:   in.RoomID,
		Date:     schedule.FormatDate(date),
		Shift:    in.Shift,
		Event:    strings.TrimSpace(in.Event),
	}
	if err := s.reservations.Create(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// ListByDate returns the reservations for one date joined with display
// fields, ordered by room name and shift.
func (s *Service) ListByDate(ctx context.Context, date time.Time) ([]repository.Detail, error) {
	return s.reservations.FindByDate(ctx, schedule.FormatDate(schedule.DateOnly(date)))
}

// ListInRange returns the reservations inside the inclusive [start,
// end] range ordered by date.  A start after end fails with
// ErrInvalidRange.
func (s *Service) ListInRange(ctx context.Context, start, end time.Time) ([]repository.Detail, error) {
	start, end = schedule.DateOnly(start), schedule.DateOnly(end)
	if start.After(end) {
		return nil, ErrInvalidRange
	}
	return s.reservations.FindInDateRange(ctx, start, end)
}

// EditEvent renames the event of the reservation with the given folio.
// The folio must belong to the [start, end] selection range the caller
// was shown; edits carry no lead-time restriction.
func (s *Service) EditEvent(ctx context.Context, start, end time.Time, folio int64, newEvent string) error {
	res, err := s.inRange(ctx, start, end, folio)
	if err != nil {
		return err
	}
	return s.reservations.UpdateEvent(ctx, res.Folio, newEvent)
}

// Cancel deletes the reservation with the given folio, freeing its slot
// for new bookings.  The lead time is recomputed from the reservation's
// own date against today; inside the minimum window the cancellation is
// refused with ErrCancelWindow and nothing is deleted.  On success the
// deleted reservation is returned for the caller's bookkeeping.
func (s *Service) Cancel(ctx context.Context, start, end time.Time, folio int64) (*model.Reservation, error) {
	res, err := s.inRange(ctx, start, end, folio)
	if err != nil {
		return nil, err
	}
	date, ok := schedule.ParseDate(res.Date)
	if !ok {
		return nil, fmt.Errorf("%w: stored date %q is malformed", repository.ErrStorage, res.Date)
	}
	today := schedule.DateOnly(s.now())
	if date.Before(schedule.EarliestAllowedDate(today)) {
		return nil, ErrCancelWindow
	}
	if err := s.reservations.Delete(ctx, res.Folio); err != nil {
		return nil, err
	}
	return res, nil
}

// inRange loads the reservation and verifies its date lies inside the
// caller's selection range.  A folio outside the range reads as not
// found: it was never part of the list offered for selection.
func (s *Service) inRange(ctx context.Context, start, end time.Time, folio int64) (*model.Reservation, error) {
	start, end = schedule.DateOnly(start), schedule.DateOnly(end)
	if start.After(end) {
		return nil, ErrInvalidRange
	}
	res, err := s.reservations.GetByFolio(ctx, folio)
	if err != nil {
		return nil, err
	}
	date, ok := schedule.ParseDate(res.Date)
	if !ok {
		return nil, fmt.Errorf("%w: stored date %q is malformed", repository.ErrStorage, res.Date)
	}
	if date.Before(start) || date.After(end) {
		return nil, fmt.Errorf("%w: folio %d is outside the selected range", repository.ErrReservationNotFound, folio)
	}
	return res, nil
}
