// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4" // the Echo web framework handles routing

	"github.com/iliyamo/coworking-room-reservation/internal/handler"
)

// RegisterRoutes registers the health check on the provided Echo
// instance.  Load balancers and monitoring systems use it to verify
// that the service is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterDirectory registers client and room registration and their
// ordered listings under /v1.
func RegisterDirectory(e *echo.Echo, d *handler.DirectoryHandler) {
	e.POST("/v1/clients", d.CreateClient)
	e.GET("/v1/clients", d.ListClients)
	e.POST("/v1/rooms", d.CreateRoom)
	e.GET("/v1/rooms", d.ListRooms)
}

// RegisterReservations registers the reservation lifecycle endpoints,
// the availability lookup and the daily report.  The cache middleware
// applies to the read-only lookups only; mutations always reach the
// store.
func RegisterReservations(e *echo.Echo, r *handler.ReservationHandler, cache echo.MiddlewareFunc) {
	e.POST("/v1/reservations", r.Create)
	e.GET("/v1/reservations", r.List, cache)
	e.PATCH("/v1/reservations/:folio", r.EditEvent)
	e.DELETE("/v1/reservations/:folio", r.Cancel)
	e.GET("/v1/availability", r.Availability, cache)
	e.GET("/v1/reports/daily", r.DailyReport)
}
