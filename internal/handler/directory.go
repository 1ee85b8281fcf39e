package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/coworking-room-reservation/internal/repository"
)

// DirectoryHandler serves client and room registration and the ordered
// listings the reservation flows select from.
type DirectoryHandler struct {
	ClientRepo *repository.ClientRepo // client persistence
	RoomRepo   *repository.RoomRepo   // room persistence
}

// NewDirectoryHandler constructs a DirectoryHandler and panics if any
// dependency is nil.
func NewDirectoryHandler(clientRepo *repository.ClientRepo, roomRepo *repository.RoomRepo) *DirectoryHandler {
	if clientRepo == nil || roomRepo == nil {
		panic("nil repository passed to NewDirectoryHandler")
	}
	return &DirectoryHandler{ClientRepo: clientRepo, RoomRepo: roomRepo}
}

// CreateClient handles POST /v1/clients.  Both names are required and
// trimmed before storage.
func (h *DirectoryHandler) CreateClient(c echo.Context) error {
	var body struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	id, err := h.ClientRepo.Create(c.Request().Context(), body.FirstName, body.LastName)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// ListClients handles GET /v1/clients, ordered by (last name, first
// name) ascending.
func (h *DirectoryHandler) ListClients(c echo.Context) error {
	clients, err := h.ClientRepo.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": clients})
}

// CreateRoom handles POST /v1/rooms.  The name is required and the
// capacity must be greater than zero.
func (h *DirectoryHandler) CreateRoom(c echo.Context) error {
	var body struct {
		Name     string `json:"name"`
		Capacity int    `json:"capacity"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	id, err := h.RoomRepo.Create(c.Request().Context(), body.Name, body.Capacity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// ListRooms handles GET /v1/rooms, ordered by name ascending.
func (h *DirectoryHandler) ListRooms(c echo.Context) error {
	rooms, err := h.RoomRepo.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": rooms})
}
