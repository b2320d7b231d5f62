package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

// dateLayout is the format used to pass date-only values to MySQL DATE
// columns.
const dateLayout = "2006-01-02"

// RoomRepo provides data access to the rooms table.  Rooms are always
// addressed by the pair (room id, hotel id) so that a room can never be
// resolved against the wrong hotel.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo returns a new RoomRepo bound to the given database.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

// DB exposes the underlying connection pool so handlers can begin
// transactions spanning multiple repositories.
func (r *RoomRepo) DB() *sql.DB { return r.db }

// Create inserts a new room for a hotel.  The caller is responsible for
// deriving Capacity from RoomType before calling.  On success the room's
// ID and timestamp fields are populated.
func (r *RoomRepo) Create(ctx context.Context, rm *model.Room) error {
	const qInsert = `INSERT INTO rooms (hotel_id, room_type, capacity) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert, rm.HotelID, string(rm.RoomType), rm.Capacity)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rm.ID = uint64(id)

	const qSelect = `SELECT created_at, updated_at FROM rooms WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, rm.ID).Scan(&rm.CreatedAt, &rm.UpdatedAt)
}

// GetByIDAndHotel fetches a room by id, but only if it belongs to the
// specified hotel.  If the room doesn't exist or belongs to another hotel,
// ErrRoomNotFound is returned.
func (r *RoomRepo) GetByIDAndHotel(ctx context.Context, roomID, hotelID uint64) (*model.Room, error) {
	const q = `SELECT id, hotel_id, room_type, capacity, created_at, updated_at
	           FROM rooms WHERE id = ? AND hotel_id = ?`
	return scanRoomRow(r.db.QueryRowContext(ctx, q, roomID, hotelID))
}

// GetByIDAndHotelForUpdateTx fetches a room like GetByIDAndHotel but locks
// the row with SELECT ... FOR UPDATE inside the provided transaction.
// Booking admission takes this lock so that two concurrent admissions on
// the same room cannot both observe "no overlap"; the overlap check and
// the insert then execute under the lock.  The caller must commit or
// roll back the transaction.
func (r *RoomRepo) GetByIDAndHotelForUpdateTx(ctx context.Context, tx *sql.Tx, roomID, hotelID uint64) (*model.Room, error) {
	const q = `SELECT id, hotel_id, room_type, capacity, created_at, updated_at
	           FROM rooms WHERE id = ? AND hotel_id = ? FOR UPDATE`
	return scanRoomRow(tx.QueryRowContext(ctx, q, roomID, hotelID))
}

func scanRoomRow(row *sql.Row) (*model.Room, error) {
	var rm model.Room
	var roomType string
	if err := row.Scan(&rm.ID, &rm.HotelID, &roomType, &rm.Capacity, &rm.CreatedAt, &rm.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	rm.RoomType = model.RoomType(roomType)
	return &rm, nil
}

// ListByHotel returns all rooms of a hotel ordered by id.
func (r *RoomRepo) ListByHotel(ctx context.Context, hotelID uint64) ([]model.Room, error) {
	const q = `SELECT id, hotel_id, room_type, capacity, created_at, updated_at
	           FROM rooms WHERE hotel_id = ? ORDER BY id`
	return r.queryRooms(ctx, q, hotelID)
}

// ListAvailable returns the rooms of a hotel that can take the requested
// stay: capacity at least the guest count and no booking overlapping the
// half-open range [start, end).  The NOT EXISTS subquery is the SQL twin
// of the engine's overlap predicate (existing.start < end AND
// existing.end > start); the two must stay in agreement so that a room
// excluded here is exactly a room whose admission would fail.
func (r *RoomRepo) ListAvailable(ctx context.Context, hotelID uint64, start, end time.Time, guests int) ([]model.Room, error) {
	const q = `SELECT rm.id, rm.hotel_id, rm.room_type, rm.capacity, rm.created_at, rm.updated_at
	           FROM rooms rm
	           WHERE rm.hotel_id = ? AND rm.capacity >= ?
	             AND NOT EXISTS (
	                 SELECT 1 FROM bookings b
	                 WHERE b.room_id = rm.id
	                   AND b.start_date < ? AND b.end_date > ?
	             )
	           ORDER BY rm.id`
	return r.queryRooms(ctx, q, hotelID, guests, end.Format(dateLayout), start.Format(dateLayout))
}

func (r *RoomRepo) queryRooms(ctx context.Context, q string, args ...interface{}) ([]model.Room, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Room, 0)
	for rows.Next() {
		var rm model.Room
		var roomType string
		if err := rows.Scan(&rm.ID, &rm.HotelID, &roomType, &rm.Capacity, &rm.CreatedAt, &rm.UpdatedAt); err != nil {
			return nil, err
		}
		rm.RoomType = model.RoomType(roomType)
		out = append(out, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
