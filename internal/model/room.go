package model

import "time"

// RoomType enumerates the supported room categories.  The guest capacity of
// a room is derived from its type via CapacityOf and is never settable on
// its own, so type and capacity cannot drift apart.
type RoomType string

const (
	RoomTypeSingle RoomType = "SINGLE"
	RoomTypeDouble RoomType = "DOUBLE"
	RoomTypeDeluxe RoomType = "DELUXE"
)

// CapacityOf returns the guest capacity for a room type.  The second return
// value is false when the type is not one of the known categories.
func CapacityOf(t RoomType) (int, bool) {
	switch t {
	case RoomTypeSingle:
		return 1, true
	case RoomTypeDouble:
		return 2, true
	case RoomTypeDeluxe:
		return 3, true
	}
	return 0, false
}

// Room describes a bookable room inside a hotel.  Rooms are addressed by
// the pair (hotel id, room id); lookups always require both so a room can
// never be resolved against the wrong hotel.  This struct corresponds to a
// row in the `rooms` table.
//
// Fields:
//  ID        – primary key identifier.
//  HotelID   – hotel to which this room belongs.
//  RoomType  – category of the room (SINGLE, DOUBLE, DELUXE).
//  Capacity  – maximum number of guests, derived from RoomType.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Room struct {
	ID        uint64    // rooms.id
	HotelID   uint64    // rooms.hotel_id
	RoomType  RoomType  // rooms.room_type
	Capacity  int       // rooms.capacity
	CreatedAt time.Time // rooms.created_at
	UpdatedAt time.Time // rooms.updated_at
}
