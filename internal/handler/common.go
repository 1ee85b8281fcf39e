package handler // handler defines http handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/coworking-room-reservation/internal/booking"
	"github.com/iliyamo/coworking-room-reservation/internal/repository"
	"github.com/iliyamo/coworking-room-reservation/internal/schedule"
)

// writeError maps a core error onto an HTTP response.  The mapping is
// fixed: validation 400, not found 404, slot conflict 409, policy 422,
// anything else (storage included) 500.  Rest-day rejections carry the
// suggested substitute date so the client can offer it.
func writeError(c echo.Context, err error) error {
	var restDay *booking.RestDayError
	switch {
	case errors.As(err, &restDay):
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"error":          restDay.Error(),
			"suggested_date": schedule.FormatDate(restDay.Suggested),
		})
	case errors.Is(err, repository.ErrValidation):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrClientNotFound),
		errors.Is(err, repository.ErrRoomNotFound),
		errors.Is(err, repository.ErrReservationNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrSlotTaken):
		return c.JSON(http.StatusConflict, echo.Map{"error": "slot already reserved for that room, date and shift"})
	case errors.Is(err, booking.ErrPolicy):
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}
