package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

// mysqlDuplicateEntry is the MySQL error number for a unique constraint
// violation (ER_DUP_ENTRY).
const mysqlDuplicateEntry = 1062

// BookingRepo provides data access to the bookings table.  Bookings are
// created only through the admission flow and never mutated afterwards,
// so the repository exposes no update methods.  Date columns are DATE
// (no time component) and all values are UTC.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// ListByRoomTx returns all bookings for a room within the provided
// transaction.  Admission calls this after locking the room row, so the
// returned set is stable for the duration of the overlap check.  The
// caller must commit or roll back the transaction.
func (r *BookingRepo) ListByRoomTx(ctx context.Context, tx *sql.Tx, roomID uint64) ([]model.Booking, error) {
	const q = `SELECT id, reference, room_id, hotel_id, number_of_guests, start_date, end_date, created_at
	           FROM bookings WHERE room_id = ? ORDER BY start_date`
	rows, err := tx.QueryContext(ctx, q, roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Booking
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.Reference, &b.RoomID, &b.HotelID, &b.NumberOfGuests, &b.StartDate, &b.EndDate, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTx inserts a new booking within the scope of an existing
// transaction.  It populates the generated ID and CreatedAt on the
// provided record.  A unique index on bookings.reference backs the
// global uniqueness of references; a collision surfaces as
// ErrDuplicateReference so the caller can generate a fresh reference and
// retry.  The caller must commit or roll back the transaction.
func (r *BookingRepo) CreateTx(ctx context.Context, tx *sql.Tx, b *model.Booking) error {
	const qInsert = `INSERT INTO bookings (reference, room_id, hotel_id, number_of_guests, start_date, end_date)
	                 VALUES (?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, qInsert,
		b.Reference, b.RoomID, b.HotelID, b.NumberOfGuests,
		b.StartDate.Format(dateLayout), b.EndDate.Format(dateLayout),
	)
	if err != nil {
		var myErr *mysql.MySQLError
		if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
			return ErrDuplicateReference
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)

	// Query back the row to populate timestamps and normalized dates.
	const qSelect = `SELECT start_date, end_date, created_at FROM bookings WHERE id = ?`
	return tx.QueryRowContext(ctx, qSelect, b.ID).Scan(&b.StartDate, &b.EndDate, &b.CreatedAt)
}

// GetByReference fetches a booking by its exact reference.  It returns
// ErrBookingNotFound when no booking carries the reference; callers treat
// this as a "no result" signal rather than a fault.
func (r *BookingRepo) GetByReference(ctx context.Context, reference string) (*model.Booking, error) {
	const q = `SELECT id, reference, room_id, hotel_id, number_of_guests, start_date, end_date, created_at
	           FROM bookings WHERE reference = ?`
	var b model.Booking
	err := r.db.QueryRowContext(ctx, q, reference).Scan(
		&b.ID, &b.Reference, &b.RoomID, &b.HotelID, &b.NumberOfGuests, &b.StartDate, &b.EndDate, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}
