// Package handler exposes HTTP handlers for the booking API. This file
// defines handlers for hotel management and browsing. Responses contain
// only safe fields; internal timestamps are filtered out.
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-room-booking/internal/model"
	"github.com/iliyamo/hotel-room-booking/internal/repository"
)

// HotelHandler aggregates the repositories needed for hotel management.
type HotelHandler struct {
	HotelRepo *repository.HotelRepo // provides access to hotel data
}

// NewHotelHandler constructs a HotelHandler with the provided repository.
func NewHotelHandler(hotelRepo *repository.HotelRepo) *HotelHandler {
	if hotelRepo == nil {
		panic("nil repository passed to NewHotelHandler")
	}
	return &HotelHandler{HotelRepo: hotelRepo}
}

// HotelView represents a hotel exposed via the API. It contains only safe
// fields.
type HotelView struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

func hotelView(h *model.Hotel) HotelView {
	return HotelView{ID: h.ID, Name: h.Name}
}

// CreateHotel handles POST /v1/hotels. The request body must contain a
// JSON object with a non-empty "name" of at most 100 characters. Returns
// 201 Created with the new hotel.
func (h *HotelHandler) CreateHotel(c echo.Context) error {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	if len(name) > model.MaxHotelNameLength {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name must be at most 100 characters"})
	}
	hotel := &model.Hotel{Name: name}
	if err := h.HotelRepo.Create(c.Request().Context(), hotel); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"item": hotelView(hotel)})
}

// ListHotels handles GET /v1/hotels. Response JSON contains an "items"
// array of HotelView.
func (h *HotelHandler) ListHotels(c echo.Context) error {
	hotels, err := h.HotelRepo.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]HotelView, 0, len(hotels))
	for _, hotel := range hotels {
		out = append(out, hotelView(hotel))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// GetHotel handles GET /v1/hotels/:id. It returns 404 when the hotel does
// not exist.
func (h *HotelHandler) GetHotel(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hotel id"})
	}
	hotel, err := h.HotelRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrHotelNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hotel not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": hotelView(hotel)})
}

// SearchHotelByName handles GET /v1/search/hotels?name=... It performs an
// exact, case-insensitive match on the hotel name. A missing hotel is a
// normal "no result" outcome and maps to 404, not a server fault.
func (h *HotelHandler) SearchHotelByName(c echo.Context) error {
	name := strings.TrimSpace(c.QueryParam("name"))
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	hotel, err := h.HotelRepo.GetByName(c.Request().Context(), name)
	if err != nil {
		if errors.Is(err, repository.ErrHotelNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hotel not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": hotelView(hotel)})
}

// DeleteHotel handles DELETE /v1/hotels/:id. Deleting a hotel removes its
// rooms (and their bookings) in the same transaction. Returns 204 on
// success and 404 when the hotel does not exist.
func (h *HotelHandler) DeleteHotel(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hotel id"})
	}
	if err := h.HotelRepo.DeleteByID(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrHotelNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hotel not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.NoContent(http.StatusNoContent)
}
