package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-room-booking/internal/booking"
	"github.com/iliyamo/hotel-room-booking/internal/model"
	"github.com/iliyamo/hotel-room-booking/internal/repository"
)

// RoomHandler aggregates the repositories needed for room management and
// availability search within a hotel.
type RoomHandler struct {
	HotelRepo *repository.HotelRepo // used to validate the owning hotel
	RoomRepo  *repository.RoomRepo  // provides access to room data
}

// NewRoomHandler constructs a RoomHandler with the provided repositories.
func NewRoomHandler(hotelRepo *repository.HotelRepo, roomRepo *repository.RoomRepo) *RoomHandler {
	if hotelRepo == nil || roomRepo == nil {
		panic("nil repository passed to NewRoomHandler")
	}
	return &RoomHandler{HotelRepo: hotelRepo, RoomRepo: roomRepo}
}

// RoomView represents a room exposed via the API.
type RoomView struct {
	ID       uint64 `json:"id"`
	HotelID  uint64 `json:"hotel_id"`
	RoomType string `json:"room_type"`
	Capacity int    `json:"capacity"`
}

func roomView(rm *model.Room) RoomView {
	return RoomView{ID: rm.ID, HotelID: rm.HotelID, RoomType: string(rm.RoomType), Capacity: rm.Capacity}
}

// CreateRoom handles POST /v1/hotels/:id/rooms. The body carries only the
// room type; capacity is derived from it and is not accepted as input, so
// the two cannot disagree. Returns 201 Created with the new room.
func (h *RoomHandler) CreateRoom(c echo.Context) error {
	hotelID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || hotelID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hotel id"})
	}
	var body struct {
		RoomType string `json:"room_type"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	roomType := model.RoomType(strings.ToUpper(strings.TrimSpace(body.RoomType)))
	capacity, ok := model.CapacityOf(roomType)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room_type must be one of SINGLE, DOUBLE, DELUXE"})
	}
	ctx := c.Request().Context()
	// ensure hotel exists
	if _, err := h.HotelRepo.GetByID(ctx, hotelID); err != nil {
		if errors.Is(err, repository.ErrHotelNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hotel not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	rm := &model.Room{HotelID: hotelID, RoomType: roomType, Capacity: capacity}
	if err := h.RoomRepo.Create(ctx, rm); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"item": roomView(rm)})
}

// ListRooms handles GET /v1/hotels/:id/rooms. It validates the hotel
// exists, then returns all of its rooms.
func (h *RoomHandler) ListRooms(c echo.Context) error {
	hotelID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || hotelID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hotel id"})
	}
	ctx := c.Request().Context()
	if _, err := h.HotelRepo.GetByID(ctx, hotelID); err != nil {
		if errors.Is(err, repository.ErrHotelNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hotel not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	rooms, err := h.RoomRepo.ListByHotel(ctx, hotelID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]RoomView, 0, len(rooms))
	for i := range rooms {
		out = append(out, roomView(&rooms[i]))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// GetAvailableRooms handles GET /v1/hotels/:id/available-rooms.  Query
// parameters: start_date and end_date (YYYY-MM-DD, half-open range) and
// guests (positive integer).  It returns every room of the hotel whose
// capacity covers the guest count and whose bookings do not overlap the
// requested range.  The result may be empty; that is a 200, not an error.
func (h *RoomHandler) GetAvailableRooms(c echo.Context) error {
	hotelID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || hotelID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hotel id"})
	}
	start, err := parseDate(c.QueryParam("start_date"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_date must be a valid date (YYYY-MM-DD)"})
	}
	end, err := parseDate(c.QueryParam("end_date"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "end_date must be a valid date (YYYY-MM-DD)"})
	}
	guests, err := strconv.Atoi(c.QueryParam("guests"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "guests must be an integer"})
	}
	stay, err := booking.NewStay(start, end, guests)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	ctx := c.Request().Context()
	if _, err := h.HotelRepo.GetByID(ctx, hotelID); err != nil {
		if errors.Is(err, repository.ErrHotelNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hotel not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	rooms, err := h.RoomRepo.ListAvailable(ctx, hotelID, stay.Start, stay.End, stay.Guests)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]RoomView, 0, len(rooms))
	for i := range rooms {
		out = append(out, roomView(&rooms[i]))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// parseDate parses a date-only value.  RFC 3339 timestamps are accepted as
// well; any time-of-day component is discarded by the stay normalization.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
