package booking

import (
	"errors"
	"testing"
	"time"

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustStay(t *testing.T, start, end time.Time, guests int) Stay {
	t.Helper()
	s, err := NewStay(start, end, guests)
	if err != nil {
		t.Fatalf("NewStay(%v, %v, %d): %v", start, end, guests, err)
	}
	return s
}

func TestNormalizeDateDiscardsTimeOfDay(t *testing.T) {
	in := time.Date(2025, 8, 1, 15, 42, 7, 999, time.FixedZone("X", 3*3600))
	got := NormalizeDate(in)
	want := date(2025, 8, 1)
	if !got.Equal(want) {
		t.Fatalf("NormalizeDate = %v, want %v", got, want)
	}
}

func TestNewStayValidation(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		guests     int
		wantErr    error
	}{
		{"valid one night", date(2025, 8, 1), date(2025, 8, 2), 2, nil},
		{"start equals end", date(2025, 8, 1), date(2025, 8, 1), 2, ErrEndNotAfterStart},
		{"end before start", date(2025, 8, 5), date(2025, 8, 1), 2, ErrEndNotAfterStart},
		{"zero guests", date(2025, 8, 1), date(2025, 8, 2), 0, ErrNonPositiveGuests},
		{"negative guests", date(2025, 8, 1), date(2025, 8, 2), -1, ErrNonPositiveGuests},
		// Same calendar date with differing clock times is still an empty range.
		{"same date different times", date(2025, 8, 1).Add(2 * time.Hour), date(2025, 8, 1).Add(20 * time.Hour), 1, ErrEndNotAfterStart},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStay(tt.start, tt.end, tt.guests)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewStay error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestOverlapsHalfOpen(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{"identical", date(2025, 8, 1), date(2025, 8, 5), date(2025, 8, 1), date(2025, 8, 5), true},
		{"contained", date(2025, 8, 1), date(2025, 8, 5), date(2025, 8, 3), date(2025, 8, 4), true},
		{"partial front", date(2025, 8, 1), date(2025, 8, 5), date(2025, 7, 30), date(2025, 8, 2), true},
		{"partial back", date(2025, 8, 1), date(2025, 8, 5), date(2025, 8, 4), date(2025, 8, 7), true},
		{"checkout equals checkin", date(2025, 8, 1), date(2025, 8, 5), date(2025, 8, 5), date(2025, 8, 6), false},
		{"checkin equals checkout", date(2025, 8, 5), date(2025, 8, 6), date(2025, 8, 1), date(2025, 8, 5), false},
		{"disjoint", date(2025, 8, 1), date(2025, 8, 3), date(2025, 8, 10), date(2025, 8, 12), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd); got != tt.want {
				t.Fatalf("Overlaps = %v, want %v", got, tt.want)
			}
			// The predicate is symmetric in its two ranges.
			if got := Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd); got != tt.want {
				t.Fatalf("Overlaps (swapped) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckAdmissionCapacityBoundary(t *testing.T) {
	room := &model.Room{ID: 1, HotelID: 1, RoomType: model.RoomTypeDouble, Capacity: 2}

	at := mustStay(t, date(2025, 8, 1), date(2025, 8, 2), 2)
	if err := CheckAdmission(room, nil, at); err != nil {
		t.Fatalf("guests == capacity should be admitted, got %v", err)
	}

	over := mustStay(t, date(2025, 8, 1), date(2025, 8, 2), 3)
	if err := CheckAdmission(room, nil, over); !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("guests == capacity+1 error = %v, want ErrCapacityExceeded", err)
	}
}

// Capacity is checked before overlaps, so an oversized party is rejected
// with ErrCapacityExceeded even when the dates would also conflict.
func TestCheckAdmissionCapacityBeforeConflict(t *testing.T) {
	room := &model.Room{ID: 1, HotelID: 1, RoomType: model.RoomTypeDouble, Capacity: 2}
	existing := []model.Booking{{RoomID: 1, StartDate: date(2025, 8, 1), EndDate: date(2025, 8, 5)}}

	stay := mustStay(t, date(2025, 8, 2), date(2025, 8, 4), 3)
	if err := CheckAdmission(room, existing, stay); !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("error = %v, want ErrCapacityExceeded", err)
	}
}

func TestCheckAdmissionOverlapSymmetry(t *testing.T) {
	room := &model.Room{ID: 7, HotelID: 1, RoomType: model.RoomTypeDeluxe, Capacity: 3}
	ranges := []struct {
		name             string
		aStart, aEnd     time.Time
		bStart, bEnd     time.Time
	}{
		{"contained", date(2025, 8, 1), date(2025, 8, 5), date(2025, 8, 3), date(2025, 8, 4)},
		{"straddles start", date(2025, 8, 3), date(2025, 8, 8), date(2025, 8, 1), date(2025, 8, 4)},
		{"straddles end", date(2025, 8, 1), date(2025, 8, 4), date(2025, 8, 3), date(2025, 8, 8)},
		{"identical", date(2025, 8, 1), date(2025, 8, 5), date(2025, 8, 1), date(2025, 8, 5)},
	}
	for _, tt := range ranges {
		t.Run(tt.name, func(t *testing.T) {
			first := []model.Booking{{RoomID: room.ID, StartDate: tt.aStart, EndDate: tt.aEnd}}
			stayB := mustStay(t, tt.bStart, tt.bEnd, 1)
			if err := CheckAdmission(room, first, stayB); !errors.Is(err, ErrDatesConflict) {
				t.Fatalf("admit B after A: error = %v, want ErrDatesConflict", err)
			}
			// Admission in the other order must fail too.
			second := []model.Booking{{RoomID: room.ID, StartDate: tt.bStart, EndDate: tt.bEnd}}
			stayA := mustStay(t, tt.aStart, tt.aEnd, 1)
			if err := CheckAdmission(room, second, stayA); !errors.Is(err, ErrDatesConflict) {
				t.Fatalf("admit A after B: error = %v, want ErrDatesConflict", err)
			}
			// And the room must be excluded from availability for B.
			byRoom := map[uint64][]model.Booking{room.ID: first}
			if got := FilterAvailable([]model.Room{*room}, byRoom, stayB); len(got) != 0 {
				t.Fatalf("room should be excluded from availability, got %v", got)
			}
		})
	}
}

func TestCheckAdmissionDisjointRangesIndependent(t *testing.T) {
	room := &model.Room{ID: 2, HotelID: 1, RoomType: model.RoomTypeSingle, Capacity: 1}
	existing := []model.Booking{{RoomID: 2, StartDate: date(2025, 8, 1), EndDate: date(2025, 8, 5)}}

	// Adjacent on the right: checkout day equals the new check-in day.
	adjacent := mustStay(t, date(2025, 8, 5), date(2025, 8, 8), 1)
	if err := CheckAdmission(room, existing, adjacent); err != nil {
		t.Fatalf("adjacent stay should be admitted, got %v", err)
	}
	// Adjacent on the left.
	before := mustStay(t, date(2025, 7, 28), date(2025, 8, 1), 1)
	if err := CheckAdmission(room, existing, before); err != nil {
		t.Fatalf("preceding stay should be admitted, got %v", err)
	}
}

// FilterAvailable and CheckAdmission must agree: a room excluded from the
// availability result is exactly a room whose admission would fail, and
// vice versa.
func TestAvailabilityMatchesAdmission(t *testing.T) {
	rooms := []model.Room{
		{ID: 1, HotelID: 1, RoomType: model.RoomTypeSingle, Capacity: 1},
		{ID: 2, HotelID: 1, RoomType: model.RoomTypeDouble, Capacity: 2},
		{ID: 3, HotelID: 1, RoomType: model.RoomTypeDeluxe, Capacity: 3},
	}
	byRoom := map[uint64][]model.Booking{
		1: {{RoomID: 1, StartDate: date(2025, 8, 2), EndDate: date(2025, 8, 6)}},
		3: {
			{RoomID: 3, StartDate: date(2025, 7, 20), EndDate: date(2025, 8, 1)},
			{RoomID: 3, StartDate: date(2025, 8, 6), EndDate: date(2025, 8, 9)},
		},
	}
	stays := []Stay{
		mustStay(t, date(2025, 8, 1), date(2025, 8, 6), 1),
		mustStay(t, date(2025, 8, 1), date(2025, 8, 2), 2),
		mustStay(t, date(2025, 8, 5), date(2025, 8, 7), 3),
		mustStay(t, date(2025, 8, 9), date(2025, 8, 12), 2),
	}
	for _, stay := range stays {
		available := FilterAvailable(rooms, byRoom, stay)
		included := make(map[uint64]bool, len(available))
		for _, r := range available {
			included[r.ID] = true
		}
		for i := range rooms {
			err := CheckAdmission(&rooms[i], byRoom[rooms[i].ID], stay)
			if included[rooms[i].ID] && err != nil {
				t.Fatalf("stay %v: room %d listed available but admission fails: %v", stay, rooms[i].ID, err)
			}
			if !included[rooms[i].ID] && err == nil {
				t.Fatalf("stay %v: room %d excluded but admission would succeed", stay, rooms[i].ID)
			}
		}
	}
}

func TestFilterAvailablePreservesOrder(t *testing.T) {
	rooms := []model.Room{
		{ID: 5, Capacity: 2},
		{ID: 3, Capacity: 2},
		{ID: 9, Capacity: 2},
	}
	stay := mustStay(t, date(2025, 8, 1), date(2025, 8, 2), 1)
	got := FilterAvailable(rooms, nil, stay)
	if len(got) != 3 || got[0].ID != 5 || got[1].ID != 3 || got[2].ID != 9 {
		t.Fatalf("FilterAvailable reordered rooms: %v", got)
	}
}

// Walkthrough: hotel with one Double room.  Book it, verify it drops out of
// availability, verify an overlapping request conflicts, verify the
// adjacent follow-up stay is admitted.
func TestDoubleRoomScenario(t *testing.T) {
	room := &model.Room{ID: 11, HotelID: 4, RoomType: model.RoomTypeDouble, Capacity: 2}
	var existing []model.Booking

	first := mustStay(t, date(2025, 8, 1), date(2025, 8, 5), 2)
	if err := CheckAdmission(room, existing, first); err != nil {
		t.Fatalf("first booking rejected: %v", err)
	}
	ref, err := NewReference()
	if err != nil {
		t.Fatalf("NewReference: %v", err)
	}
	existing = append(existing, model.Booking{
		Reference: ref, RoomID: room.ID, HotelID: room.HotelID,
		NumberOfGuests: 2, StartDate: first.Start, EndDate: first.End,
	})

	byRoom := map[uint64][]model.Booking{room.ID: existing}
	if got := FilterAvailable([]model.Room{*room}, byRoom, first); len(got) != 0 {
		t.Fatalf("booked room still listed as available: %v", got)
	}

	overlapping := mustStay(t, date(2025, 8, 3), date(2025, 8, 4), 1)
	if err := CheckAdmission(room, existing, overlapping); !errors.Is(err, ErrDatesConflict) {
		t.Fatalf("overlapping stay error = %v, want ErrDatesConflict", err)
	}

	adjacent := mustStay(t, date(2025, 8, 5), date(2025, 8, 6), 2)
	if err := CheckAdmission(room, existing, adjacent); err != nil {
		t.Fatalf("adjacent stay rejected: %v", err)
	}
}

func TestCapacityOf(t *testing.T) {
	tests := []struct {
		roomType model.RoomType
		capacity int
		known    bool
	}{
		{model.RoomTypeSingle, 1, true},
		{model.RoomTypeDouble, 2, true},
		{model.RoomTypeDeluxe, 3, true},
		{model.RoomType("SUITE"), 0, false},
		{model.RoomType(""), 0, false},
	}
	for _, tt := range tests {
		got, ok := model.CapacityOf(tt.roomType)
		if got != tt.capacity || ok != tt.known {
			t.Fatalf("CapacityOf(%q) = (%d, %v), want (%d, %v)", tt.roomType, got, ok, tt.capacity, tt.known)
		}
	}
}
