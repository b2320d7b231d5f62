// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-room-booking/internal/handler"
)

// RegisterRoutes registers routes that carry no domain state on the
// provided Echo instance.  Currently it exposes only a health check used
// by load balancers and monitoring systems.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterBooking registers the booking API under /v1.  Read-only browse
// endpoints run behind the supplied cache middleware (a pass-through when
// caching is disabled).  Booking lookup by reference stays uncached so a
// freshly issued reference is immediately resolvable, and every mutating
// endpoint bypasses the cache by construction.
func RegisterBooking(e *echo.Echo, hotels *handler.HotelHandler, rooms *handler.RoomHandler, bookings *handler.BookingHandler, cache echo.MiddlewareFunc) {
	browse := e.Group("/v1", cache)
	browse.GET("/hotels", hotels.ListHotels)
	browse.GET("/hotels/:id", hotels.GetHotel)
	browse.GET("/search/hotels", hotels.SearchHotelByName)
	browse.GET("/hotels/:id/rooms", rooms.ListRooms)
	browse.GET("/hotels/:id/available-rooms", rooms.GetAvailableRooms)

	e.POST("/v1/hotels", hotels.CreateHotel)
	e.DELETE("/v1/hotels/:id", hotels.DeleteHotel)
	e.POST("/v1/hotels/:id/rooms", rooms.CreateRoom)

	e.POST("/v1/bookings", bookings.CreateBooking)
	e.GET("/v1/bookings/:reference", bookings.GetBookingByReference)
}
