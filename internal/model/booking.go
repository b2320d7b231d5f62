package model

import "time"

// Booking records an admitted stay in a room.  Date ranges are half-open
// [StartDate, EndDate): the end date itself is excluded, so a checkout and
// a check-in on the same date do not conflict.  Both dates are date-only,
// stored as UTC midnight.  The reference is an 8-character uppercase
// alphanumeric code, globally unique across all bookings and immutable
// after creation.  This struct corresponds to a row in the `bookings`
// table.
//
// Fields:
//  ID             – primary key identifier.
//  Reference      – globally unique 8-char uppercase booking code.
//  RoomID         – room being booked.
//  HotelID        – owning hotel (denormalized for lookups).
//  NumberOfGuests – guest count, positive and at most the room capacity.
//  StartDate      – first night of the stay (inclusive).
//  EndDate        – checkout date (exclusive).
//  CreatedAt      – creation timestamp.
type Booking struct {
	ID             uint64    // bookings.id
	Reference      string    // bookings.reference
	RoomID         uint64    // bookings.room_id
	HotelID        uint64    // bookings.hotel_id
	NumberOfGuests int       // bookings.number_of_guests
	StartDate      time.Time // bookings.start_date
	EndDate        time.Time // bookings.end_date
	CreatedAt      time.Time // bookings.created_at
}
