package model

import "time"

// MaxHotelNameLength bounds the length of a hotel name as stored in the
// `hotels` table (VARCHAR(100)).
const MaxHotelNameLength = 100

// Hotel represents a property that offers rooms for booking.  A hotel owns
// its rooms: deleting a hotel removes every room belonging to it.  Hotel
// names are matched case-insensitively when searching.  This struct
// corresponds to a row in the `hotels` table.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – hotel name, non-empty, at most MaxHotelNameLength chars.
//  CreatedAt – timestamp when the hotel was created.
//  UpdatedAt – timestamp of last update.
type Hotel struct {
	ID        uint64    // hotels.id
	Name      string    // hotels.name
	CreatedAt time.Time // hotels.created_at
	UpdatedAt time.Time // hotels.updated_at
}
