// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingCreatedEvent is published when a booking is successfully admitted.
// It contains enough information for downstream consumers to log, notify,
// or trigger analytics without querying the primary database.
type BookingCreatedEvent struct {
	BookingID      uint64 `json:"booking_id"`
	Reference      string `json:"reference"`
	HotelID        uint64 `json:"hotel_id"`
	RoomID         uint64 `json:"room_id"`
	RoomType       string `json:"room_type"`
	NumberOfGuests int    `json:"number_of_guests"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	CreatedAt      string `json:"created_at"`
}
