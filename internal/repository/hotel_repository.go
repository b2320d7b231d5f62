// This file defines repository methods for hotels. A hotel owns its rooms:
// deletion removes the hotel's bookings and rooms before the hotel itself,
// inside a single transaction.
package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used for sentinel comparisons

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

// HotelRepo encapsulates all database queries related to hotels.  It
// depends on a sql.DB connection which should be configured elsewhere.
type HotelRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewHotelRepo constructs a HotelRepo with the provided DB handle.  This
// function allows dependency injection of the database in tests and at
// startup.  There is no initialization logic beyond assigning the field.
func NewHotelRepo(db *sql.DB) *HotelRepo {
	return &HotelRepo{db: db}
}

// DB exposes the underlying connection pool so handlers can begin
// transactions spanning multiple repositories.
func (r *HotelRepo) DB() *sql.DB { return r.db }

// Create inserts a new hotel into the database.  On success the hotel's
// ID field will be populated with the auto-generated value.  After the
// insert, a SELECT is executed to populate the CreatedAt and UpdatedAt
// fields so that callers receive a fully populated record.
func (r *HotelRepo) Create(ctx context.Context, h *model.Hotel) error {
	const qInsert = `INSERT INTO hotels (name) VALUES (?)`
	res, err := r.db.ExecContext(ctx, qInsert, h.Name)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	h.ID = uint64(id)

	const qSelect = `SELECT name, created_at, updated_at FROM hotels WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, h.ID).Scan(&h.Name, &h.CreatedAt, &h.UpdatedAt)
}

// GetByID fetches a hotel by its ID.  It returns ErrHotelNotFound if no
// row is found.
func (r *HotelRepo) GetByID(ctx context.Context, id uint64) (*model.Hotel, error) {
	const q = `SELECT id, name, created_at, updated_at FROM hotels WHERE id = ?`
	var h model.Hotel
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&h.ID, &h.Name, &h.CreatedAt, &h.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return &h, nil
}

// GetByName fetches a hotel by exact name, compared case-insensitively.
// It returns ErrHotelNotFound when no hotel carries that name; callers
// treat this as a "no result" signal rather than a fault.
func (r *HotelRepo) GetByName(ctx context.Context, name string) (*model.Hotel, error) {
	const q = `SELECT id, name, created_at, updated_at FROM hotels WHERE LOWER(name) = LOWER(?)`
	var h model.Hotel
	if err := r.db.QueryRowContext(ctx, q, name).Scan(&h.ID, &h.Name, &h.CreatedAt, &h.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return &h, nil
}

// ListAll returns all hotels ordered by id. It is used for public browsing
// endpoints to present available hotels.
func (r *HotelRepo) ListAll(ctx context.Context) ([]*model.Hotel, error) {
	const q = `SELECT id, name, created_at, updated_at FROM hotels ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Hotel
	for rows.Next() {
		h := new(model.Hotel)
		if err := rows.Scan(&h.ID, &h.Name, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteByID removes a hotel and all dependent records (bookings for its
// rooms, then the rooms themselves). If the hotel does not exist,
// ErrHotelNotFound is returned. The deletion occurs within a transaction
// to maintain integrity.
func (r *HotelRepo) DeleteByID(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()
	// Verify the hotel exists before cascading.
	var existing uint64
	if err = tx.QueryRowContext(ctx, `SELECT id FROM hotels WHERE id = ?`, id).Scan(&existing); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrHotelNotFound
		}
		return err
	}
	// Cascade delete: bookings on this hotel's rooms first.
	if _, err = tx.ExecContext(ctx,
		`DELETE b FROM bookings b
		 JOIN rooms rm ON rm.id = b.room_id
		 WHERE rm.hotel_id = ?`, id); err != nil {
		return err
	}
	// Delete rooms for this hotel.
	if _, err = tx.ExecContext(ctx, `DELETE FROM rooms WHERE hotel_id = ?`, id); err != nil {
		return err
	}
	// Finally delete the hotel.
	if _, err = tx.ExecContext(ctx, `DELETE FROM hotels WHERE id = ?`, id); err != nil {
		return err
	}
	return nil
}
