package repository

import (
	"context"
	"database/sql"
	"errors"
)

// Show is the subset of a shows row the seat engine needs.
type Show struct {
	ID             uint64 // shows.id
	HallID         uint64 // shows.hall_id
	Title          string // shows.title
	BasePriceCents uint32 // shows.base_price_cents, 0 when unset
	Status         string // SCHEDULED, CANCELLED or FINISHED
}

// ShowRepo reads shows.
type ShowRepo struct {
	db *sql.DB
}

// NewShowRepo constructs a ShowRepo with the given DB handle.
func NewShowRepo(db *sql.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

// GetByID retrieves a show by its ID.  It returns ErrShowNotFound if
// there is no matching row.
func (r *ShowRepo) GetByID(ctx context.Context, id uint64) (*Show, error) {
	const q = `SELECT id, hall_id, title, base_price_cents, status FROM shows WHERE id = ?`
	var s Show
	err := r.db.QueryRowContext(ctx, q, id).Scan(&s.ID, &s.HallID, &s.Title, &s.BasePriceCents, &s.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrShowNotFound
		}
		return nil, err
	}
	return &s, nil
}
