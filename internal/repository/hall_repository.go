package repository

import (
	"context"
	"database/sql"
	"errors"
)

// Hall represents a screening hall. SeatRows and SeatCols describe the seat
// layout and may be NULL for halls created before layouts existed.
type Hall struct {
	ID       uint64        // halls.id
	Name     string        // halls.name
	SeatRows sql.NullInt32 // halls.seat_rows
	SeatCols sql.NullInt32 // halls.seat_cols
	IsActive bool          // halls.is_active
}

// Dimensions returns the grid size, or ErrLayoutUndefined when either
// dimension is NULL or not positive.
func (h *Hall) Dimensions() (rows, cols int, err error) {
	if !h.SeatRows.Valid || !h.SeatCols.Valid || h.SeatRows.Int32 <= 0 || h.SeatCols.Int32 <= 0 {
		return 0, 0, ErrLayoutUndefined
	}
	return int(h.SeatRows.Int32), int(h.SeatCols.Int32), nil
}

// HallRepo reads halls.
type HallRepo struct {
	db *sql.DB
}

// NewHallRepo constructs a HallRepo with the given DB handle.
func NewHallRepo(db *sql.DB) *HallRepo {
	return &HallRepo{db: db}
}

// GetByID retrieves a hall by its ID.  It returns ErrHallNotFound when no
// row is found.
func (r *HallRepo) GetByID(ctx context.Context, id uint64) (*Hall, error) {
	const q = `SELECT id, name, seat_rows, seat_cols, is_active FROM halls WHERE id = ?`
	var h Hall
	err := r.db.QueryRowContext(ctx, q, id).Scan(&h.ID, &h.Name, &h.SeatRows, &h.SeatCols, &h.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrHallNotFound
		}
		return nil, err
	}
	return &h, nil
}
