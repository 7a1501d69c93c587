package repository

import (
	"context"
	"database/sql"
)

// SeatState is one physical seat of a show's hall and whether it can be
// offered. A seat is unavailable when it is deactivated, reserved, or held
// by a hold that has not yet expired. HELD rows whose holds all expired are
// treated as free, matching how holds are cleaned up lazily.
type SeatState struct {
	RowLabel    string // seats.row_label
	SeatNumber  uint32 // seats.seat_number
	Unavailable bool
}

// ShowSeatRepo reads per-show seat availability.
type ShowSeatRepo struct {
	db *sql.DB
}

// NewShowSeatRepo constructs a ShowSeatRepo given a DB handle.
func NewShowSeatRepo(db *sql.DB) *ShowSeatRepo {
	return &ShowSeatRepo{db: db}
}

const seatStatesQuery = `SELECT s.row_label, s.seat_number,
       (s.is_active = 0
        OR ss.status = 'RESERVED'
        OR EXISTS (SELECT 1 FROM seat_holds h
                   WHERE h.show_id = sh.id AND h.seat_id = s.id
                     AND h.expires_at > UTC_TIMESTAMP())) AS unavailable
FROM shows sh
JOIN seats s ON s.hall_id = sh.hall_id
LEFT JOIN show_seats ss ON ss.show_id = sh.id AND ss.seat_id = s.id
WHERE sh.id = ?
ORDER BY s.row_label, s.seat_number`

// SeatStates lists every seat of the show's hall with its availability.
// It returns an empty slice when the hall has no generated seats.
func (r *ShowSeatRepo) SeatStates(ctx context.Context, showID uint64) ([]SeatState, error) {
	rows, err := r.db.QueryContext(ctx, seatStatesQuery, showID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []SeatState{}
	for rows.Next() {
		var s SeatState
		if err := rows.Scan(&s.RowLabel, &s.SeatNumber, &s.Unavailable); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
