// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios: a lookup
// that found nothing is not the same as a write that violated a
// constraint, and the two map to different HTTP responses.
package repository

import "errors"

// ErrHotelNotFound is returned when a hotel cannot be found in the DB.
var ErrHotelNotFound = errors.New("hotel not found")

// ErrRoomNotFound is returned when a room cannot be found in the DB for
// the given hotel. Looking up an existing room under the wrong hotel id
// yields this error as well.
var ErrRoomNotFound = errors.New("room not found")

// ErrBookingNotFound is returned when no booking matches the requested
// reference.
var ErrBookingNotFound = errors.New("booking not found")

// ErrDuplicateReference is returned when inserting a booking whose
// reference collides with an existing one. The unique index on
// bookings.reference enforces this; callers generate a fresh reference
// and retry.
var ErrDuplicateReference = errors.New("booking reference already exists")
