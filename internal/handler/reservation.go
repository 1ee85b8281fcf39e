package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/coworking-room-reservation/internal/booking"
	"github.com/iliyamo/coworking-room-reservation/internal/model"
	"github.com/iliyamo/coworking-room-reservation/internal/queue"
	"github.com/iliyamo/coworking-room-reservation/internal/repository"
	"github.com/iliyamo/coworking-room-reservation/internal/report"
	"github.com/iliyamo/coworking-room-reservation/internal/schedule"
	queue_publisher "github.com/iliyamo/coworking-room-reservation/internal/service"
)

// ReservationHandler exposes the reservation lifecycle, availability
// and the daily report.  All decisions live in the booking service;
// the handler only binds, parses and renders.
type ReservationHandler struct {
	Svc      *booking.Service     // lifecycle manager and availability engine
	RoomRepo *repository.RoomRepo // room display fields for published events
}

// NewReservationHandler constructs a ReservationHandler and panics if
// any dependency is nil.
func NewReservationHandler(svc *booking.Service, roomRepo *repository.RoomRepo) *ReservationHandler {
	if svc == nil || roomRepo == nil {
		panic("nil dependency passed to NewReservationHandler")
	}
	return &ReservationHandler{Svc: svc, RoomRepo: roomRepo}
}

// Create handles POST /v1/reservations.  A rest-day date is rejected
// with the suggested substitute unless accept_next_day is set; a taken
// slot answers 409 and is not retried.
func (h *ReservationHandler) Create(c echo.Context) error {
	var body struct {
		ClientID      int64  `json:"client_id"`
		RoomID        int64  `json:"room_id"`
		Date          string `json:"date"`
		Shift         string `json:"shift"`
		Event         string `json:"event"`
		AcceptNextDay bool   `json:"accept_next_day"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	date, ok := schedule.ParseDate(body.Date)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date, use MM-DD-YYYY"})
	}
	shift, ok := model.ParseShift(body.Shift)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid shift, use Matutino, Vespertino or Nocturno"})
	}
	res, err := h.Svc.Create(c.Request().Context(), booking.CreateInput{
		ClientID:      body.ClientID,
		RoomID:        body.RoomID,
		Date:          date,
		Shift:         shift,
		Event:         body.Event,
		AcceptNextDay: body.AcceptNextDay,
	})
	if err != nil {
		return writeError(c, err)
	}
	h.publishEvent(c.Request().Context(), queue.TypeBooked, res)
	return c.JSON(http.StatusCreated, echo.Map{
		"folio": res.Folio,
		"date":  res.Date,
		"shift": res.Shift,
	})
}

// List handles GET /v1/reservations.  With from/to query parameters it
// returns the inclusive range view ordered by date (the selection list
// for edits and cancellations); otherwise it returns the single-day
// view, defaulting to today.
func (h *ReservationHandler) List(c echo.Context) error {
	from, to := c.QueryParam("from"), c.QueryParam("to")
	if from != "" || to != "" {
		start, ok1 := schedule.ParseDate(from)
		end, ok2 := schedule.ParseDate(to)
		if !ok1 || !ok2 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid range, use from=MM-DD-YYYY&to=MM-DD-YYYY"})
		}
		items, err := h.Svc.ListInRange(c.Request().Context(), start, end)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"items": items})
	}
	date, err := h.dateOrToday(c.QueryParam("date"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date, use MM-DD-YYYY"})
	}
	items, err := h.Svc.ListByDate(c.Request().Context(), date)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// EditEvent handles PATCH /v1/reservations/:folio.  The folio must fall
// inside the from/to selection range; the new event name must be
// non-blank.  Edits carry no lead-time restriction.
func (h *ReservationHandler) EditEvent(c echo.Context) error {
	folio, err := strconv.ParseInt(c.Param("folio"), 10, 64)
	if err != nil || folio <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid folio"})
	}
	start, ok1 := schedule.ParseDate(c.QueryParam("from"))
	end, ok2 := schedule.ParseDate(c.QueryParam("to"))
	if !ok1 || !ok2 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid range, use from=MM-DD-YYYY&to=MM-DD-YYYY"})
	}
	var body struct {
		Event string `json:"event"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := h.Svc.EditEvent(c.Request().Context(), start, end, folio, body.Event); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"folio": folio, "event": body.Event})
}

// Cancel handles DELETE /v1/reservations/:folio.  The folio must fall
// inside the from/to selection range and keep at least the minimum lead
// time; otherwise the reservation stays untouched.
func (h *ReservationHandler) Cancel(c echo.Context) error {
	folio, err := strconv.ParseInt(c.Param("folio"), 10, 64)
	if err != nil || folio <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid folio"})
	}
	start, ok1 := schedule.ParseDate(c.QueryParam("from"))
	end, ok2 := schedule.ParseDate(c.QueryParam("to"))
	if !ok1 || !ok2 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid range, use from=MM-DD-YYYY&to=MM-DD-YYYY"})
	}
	res, err := h.Svc.Cancel(c.Request().Context(), start, end, folio)
	if err != nil {
		return writeError(c, err)
	}
	h.publishEvent(c.Request().Context(), queue.TypeCancelled, res)
	return c.NoContent(http.StatusNoContent)
}

// Availability handles GET /v1/availability.  It returns the free
// shift set per room for the requested date, omitting fully booked
// rooms.
func (h *ReservationHandler) Availability(c echo.Context) error {
	date, ok := schedule.ParseDate(c.QueryParam("date"))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date, use MM-DD-YYYY"})
	}
	rooms, err := h.Svc.Availability(c.Request().Context(), date)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"date":  schedule.FormatDate(date),
		"rooms": rooms,
	})
}

// DailyReport handles GET /v1/reports/daily.  It serializes the day's
// reservations into the export document, defaulting to today.
func (h *ReservationHandler) DailyReport(c echo.Context) error {
	date, err := h.dateOrToday(c.QueryParam("date"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date, use MM-DD-YYYY"})
	}
	details, err := h.Svc.ListByDate(c.Request().Context(), date)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, report.Daily(schedule.FormatDate(date), details))
}

// dateOrToday parses an optional date parameter, falling back to the
// current date when absent.
func (h *ReservationHandler) dateOrToday(raw string) (time.Time, error) {
	if raw == "" {
		return schedule.DateOnly(time.Now()), nil
	}
	date, ok := schedule.ParseDate(raw)
	if !ok {
		return time.Time{}, echo.ErrBadRequest
	}
	return date, nil
}

// publishEvent emits a reservation lifecycle event to the broker.
// Publishing is best effort and runs detached from the request; a dead
// broker never fails the operation that already committed.
func (h *ReservationHandler) publishEvent(ctx context.Context, eventType string, res *model.Reservation) {
	roomName := ""
	if rm, err := h.RoomRepo.Get(ctx, res.RoomID); err == nil {
		roomName = rm.Name
	}
	ev := queue.ReservationEvent{
		Type:       eventType,
		Folio:      res.Folio,
		ClientID:   res.ClientID,
		RoomID:     res.RoomID,
		RoomName:   roomName,
		Date:       res.Date,
		Shift:      string(res.Shift),
		Event:      res.Event,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		pubCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue_publisher.PublishReservationEvent(pubCtx, ev)
	}()
}
