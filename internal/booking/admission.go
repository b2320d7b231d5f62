// Package booking contains the admission engine: the pure decision logic
// that determines whether a room can be booked for a requested stay.  It
// operates on data already fetched by the repository layer and performs no
// I/O of its own, which keeps every rule directly testable.  Handlers run
// these checks inside a database transaction so that the overlap test and
// the subsequent insert form one atomic unit per room.
package booking

import (
	"errors"
	"time"

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

// Validation errors returned by NewStay.  They name the violated constraint
// so handlers can report which input was bad.
var (
	// ErrEndNotAfterStart is returned when the requested end date is not
	// strictly after the start date once both are normalized to date-only.
	ErrEndNotAfterStart = errors.New("end date must be after start date")
	// ErrNonPositiveGuests is returned when the requested guest count is
	// zero or negative.
	ErrNonPositiveGuests = errors.New("number of guests must be positive")
)

// Admission errors returned by CheckAdmission.
var (
	// ErrCapacityExceeded is returned when the guest count exceeds the
	// capacity of the requested room.
	ErrCapacityExceeded = errors.New("number of guests exceeds room capacity")
	// ErrDatesConflict is returned when an existing booking on the room
	// overlaps the requested date range.
	ErrDatesConflict = errors.New("room already booked for the given dates")
)

// NormalizeDate discards the time-of-day component, returning the same
// calendar date at UTC midnight.  All stay comparisons happen on
// normalized dates.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Stay is a validated booking request: a normalized half-open date range
// [Start, End) and a positive guest count.  Construct one with NewStay.
type Stay struct {
	Start  time.Time
	End    time.Time
	Guests int
}

// NewStay normalizes the dates to date-only and validates the request.
// It returns ErrEndNotAfterStart when the range is empty or inverted and
// ErrNonPositiveGuests when the guest count is not positive.
func NewStay(start, end time.Time, guests int) (Stay, error) {
	s := Stay{Start: NormalizeDate(start), End: NormalizeDate(end), Guests: guests}
	if !s.End.After(s.Start) {
		return Stay{}, ErrEndNotAfterStart
	}
	if guests <= 0 {
		return Stay{}, ErrNonPositiveGuests
	}
	return s, nil
}

// Overlaps reports whether two half-open date ranges intersect:
// aStart < bEnd AND aEnd > bStart.  Ranges that merely touch (a checkout
// and a check-in on the same date) do not overlap.  This is the single
// overlap predicate in the engine; both the availability query and the
// admission check go through it so the two can never disagree.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// conflicts reports whether any booking in existing overlaps the stay.
func conflicts(existing []model.Booking, stay Stay) bool {
	for _, b := range existing {
		if Overlaps(b.StartDate, b.EndDate, stay.Start, stay.End) {
			return true
		}
	}
	return false
}

// CheckAdmission decides whether the stay may be booked into the room given
// its existing bookings.  Checks run in order, each a precondition for the
// next: capacity first (ErrCapacityExceeded), then overlap against every
// existing booking (ErrDatesConflict).  A nil return means the booking may
// be persisted.
func CheckAdmission(room *model.Room, existing []model.Booking, stay Stay) error {
	if stay.Guests > room.Capacity {
		return ErrCapacityExceeded
	}
	if conflicts(existing, stay) {
		return ErrDatesConflict
	}
	return nil
}

// FilterAvailable returns the rooms that can accommodate the stay: capacity
// at least the guest count and no existing booking overlapping the range.
// bookingsByRoom maps room IDs to their bookings; rooms absent from the map
// are treated as having none.  Input order is preserved.
func FilterAvailable(rooms []model.Room, bookingsByRoom map[uint64][]model.Booking, stay Stay) []model.Room {
	out := make([]model.Room, 0, len(rooms))
	for _, r := range rooms {
		if r.Capacity < stay.Guests {
			continue
		}
		if conflicts(bookingsByRoom[r.ID], stay) {
			continue
		}
		out = append(out, r)
	}
	return out
}
