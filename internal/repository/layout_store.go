package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/iliyamo/cinema-seat-suggest/internal/seatmap"
)

// ShowLayout is everything the recommendation handler needs for one show.
type ShowLayout struct {
	ShowID         uint64
	HallID         uint64
	HallName       string
	Title          string
	Rows           int
	Cols           int
	Occupied       []seatmap.Seat // row-major
	BasePriceCents uint32
}

// LayoutStore assembles ShowLayouts from the show, hall and seat tables.
type LayoutStore struct {
	shows *ShowRepo
	halls *HallRepo
	seats *ShowSeatRepo
}

// NewLayoutStore wires the three repositories over the same DB handle.
func NewLayoutStore(db *sql.DB) *LayoutStore {
	return &LayoutStore{
		shows: NewShowRepo(db),
		halls: NewHallRepo(db),
		seats: NewShowSeatRepo(db),
	}
}

// Layout loads the grid and occupancy of a show. Grid cells with no seats
// row are reported as occupied so they are never suggested. Seat rows that
// fall outside the declared hall dimensions are ignored.
func (s *LayoutStore) Layout(ctx context.Context, showID uint64) (*ShowLayout, error) {
	show, err := s.shows.GetByID(ctx, showID)
	if err != nil {
		return nil, err
	}
	hall, err := s.halls.GetByID(ctx, show.HallID)
	if err != nil {
		return nil, err
	}
	rows, cols, err := hall.Dimensions()
	if err != nil {
		return nil, err
	}
	states, err := s.seats.SeatStates(ctx, showID)
	if err != nil {
		return nil, fmt.Errorf("load seat states: %w", err)
	}
	if len(states) == 0 {
		return nil, ErrLayoutUndefined
	}

	free := make([][]bool, rows)
	for r := range free {
		free[r] = make([]bool, cols)
	}
	for _, st := range states {
		r, ok := seatmap.RowIndex(st.RowLabel)
		c := int(st.SeatNumber) - 1
		if !ok || r >= rows || c < 0 || c >= cols {
			continue
		}
		free[r][c] = !st.Unavailable
	}

	occupied := []seatmap.Seat{}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if !free[r][c] {
				occupied = append(occupied, seatmap.Seat{Row: r, Col: c})
			}
		}
	}
	return &ShowLayout{
		ShowID:         show.ID,
		HallID:         hall.ID,
		HallName:       hall.Name,
		Title:          show.Title,
		Rows:           rows,
		Cols:           cols,
		Occupied:       occupied,
		BasePriceCents: show.BasePriceCents,
	}, nil
}
