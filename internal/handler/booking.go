package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-room-booking/internal/booking"
	"github.com/iliyamo/hotel-room-booking/internal/model"
	"github.com/iliyamo/hotel-room-booking/internal/queue"
	"github.com/iliyamo/hotel-room-booking/internal/repository"
	queue_publisher "github.com/iliyamo/hotel-room-booking/internal/service"
)

// maxReferenceAttempts bounds the retry loop when a generated booking
// reference collides with an existing one.  With an 8-character random
// code a single collision is already improbable; the bound exists so a
// broken random source cannot loop forever.
const maxReferenceAttempts = 5

// BookingHandler groups the repositories required to admit bookings and
// look them up by reference.  Admission runs inside a transaction: the
// room row is locked, its bookings are read, the admission rules are
// evaluated and the insert happens under the same lock, so two concurrent
// requests for overlapping ranges on one room cannot both succeed.
type BookingHandler struct {
	RoomRepo    *repository.RoomRepo    // room lookup and row locking
	BookingRepo *repository.BookingRepo // booking reads and inserts
}

// NewBookingHandler constructs a BookingHandler with the provided
// repositories.  All dependencies must be non-nil.
func NewBookingHandler(roomRepo *repository.RoomRepo, bookingRepo *repository.BookingRepo) *BookingHandler {
	if roomRepo == nil || bookingRepo == nil {
		panic("nil repository passed to NewBookingHandler")
	}
	return &BookingHandler{RoomRepo: roomRepo, BookingRepo: bookingRepo}
}

// BookingView represents a booking exposed via the API.  Dates are
// rendered date-only to match their storage semantics.
type BookingView struct {
	ID             uint64 `json:"id"`
	Reference      string `json:"reference"`
	RoomID         uint64 `json:"room_id"`
	HotelID        uint64 `json:"hotel_id"`
	NumberOfGuests int    `json:"number_of_guests"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
}

func bookingView(b *model.Booking) BookingView {
	return BookingView{
		ID:             b.ID,
		Reference:      b.Reference,
		RoomID:         b.RoomID,
		HotelID:        b.HotelID,
		NumberOfGuests: b.NumberOfGuests,
		StartDate:      b.StartDate.Format("2006-01-02"),
		EndDate:        b.EndDate.Format("2006-01-02"),
	}
}

// CreateBooking handles POST /v1/bookings.  The request body must contain
// room_id, hotel_id, number_of_guests, start_date and end_date.  The
// handler validates the stay, locks the room row, re-reads the room's
// bookings under the lock, runs the admission checks and inserts the
// booking with a freshly generated reference.  Failure modes map to
// distinct statuses: invalid input 400, unknown room 404, too many guests
// 422, overlapping dates 409.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var body struct {
		RoomID         uint64 `json:"room_id"`
		HotelID        uint64 `json:"hotel_id"`
		NumberOfGuests int    `json:"number_of_guests"`
		StartDate      string `json:"start_date"`
		EndDate        string `json:"end_date"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.RoomID == 0 || body.HotelID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room_id and hotel_id are required"})
	}
	start, err := parseDate(body.StartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_date must be a valid date (YYYY-MM-DD)"})
	}
	end, err := parseDate(body.EndDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "end_date must be a valid date (YYYY-MM-DD)"})
	}
	stay, err := booking.NewStay(start, end, body.NumberOfGuests)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx := c.Request().Context()
	tx, err := h.RoomRepo.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	// Lock the room row for the duration of the admission check.
	room, err := h.RoomRepo.GetByIDAndHotelForUpdateTx(ctx, tx, body.RoomID, body.HotelID)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	existing, err := h.BookingRepo.ListByRoomTx(ctx, tx, room.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if err := booking.CheckAdmission(room, existing, stay); err != nil {
		switch {
		case errors.Is(err, booking.ErrCapacityExceeded):
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
		case errors.Is(err, booking.ErrDatesConflict):
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "admission check failed"})
		}
	}

	rec := &model.Booking{
		RoomID:         room.ID,
		HotelID:        room.HotelID,
		NumberOfGuests: stay.Guests,
		StartDate:      stay.Start,
		EndDate:        stay.End,
	}
	var createErr error
	for attempt := 0; attempt < maxReferenceAttempts; attempt++ {
		ref, refErr := booking.NewReference()
		if refErr != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to generate booking reference"})
		}
		rec.Reference = ref
		createErr = h.BookingRepo.CreateTx(ctx, tx, rec)
		if createErr == nil {
			break
		}
		if !errors.Is(createErr, repository.ErrDuplicateReference) {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create booking"})
		}
	}
	if createErr != nil {
		return c.JSON(http.StatusConflict, echo.Map{"error": "could not allocate a unique booking reference"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true

	// Publish the event best-effort; the booking stands even if the broker
	// is unreachable.
	go func(b model.Booking, roomType model.RoomType) {
		pubCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue_publisher.PublishBookingCreated(pubCtx, queue.BookingCreatedEvent{
			BookingID:      b.ID,
			Reference:      b.Reference,
			HotelID:        b.HotelID,
			RoomID:         b.RoomID,
			RoomType:       string(roomType),
			NumberOfGuests: b.NumberOfGuests,
			StartDate:      b.StartDate.Format("2006-01-02"),
			EndDate:        b.EndDate.Format("2006-01-02"),
			CreatedAt:      b.CreatedAt.UTC().Format(time.RFC3339),
		})
	}(*rec, room.RoomType)

	return c.JSON(http.StatusCreated, echo.Map{"item": bookingView(rec)})
}

// GetBookingByReference handles GET /v1/bookings/:reference.  References
// are matched exactly after trimming and uppercasing, mirroring how they
// are issued.  An unknown reference is a normal "no result" outcome and
// maps to 404.
func (h *BookingHandler) GetBookingByReference(c echo.Context) error {
	reference := strings.ToUpper(strings.TrimSpace(c.Param("reference")))
	if reference == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "reference is required"})
	}
	b, err := h.BookingRepo.GetByReference(c.Request().Context(), reference)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": bookingView(b)})
}
