package seatmap

import (
	"errors"
	"fmt"
)

// ErrInvalidGrid is returned by NewGrid for unusable dimensions or a best
// seat that falls outside the grid.
var ErrInvalidGrid = errors.New("invalid grid")

// Default theater geometry.
const (
	DefaultRows = 8
	DefaultCols = 12
)

// Grid describes the fixed seating layout of one theater.
type Grid struct {
	Rows int
	Cols int
	best map[Seat]struct{}
}

// NewGrid validates the dimensions and the premium seat block. A nil best
// slice means the theater has no premium seats.
func NewGrid(rows, cols int, best []Seat) (Grid, error) {
	if rows <= 0 || cols <= 0 {
		return Grid{}, fmt.Errorf("%w: %dx%d", ErrInvalidGrid, rows, cols)
	}
	g := Grid{Rows: rows, Cols: cols, best: make(map[Seat]struct{}, len(best))}
	for _, s := range best {
		if !g.Contains(s) {
			return Grid{}, fmt.Errorf("%w: best seat %s outside %dx%d", ErrInvalidGrid, s, rows, cols)
		}
		g.best[s] = struct{}{}
	}
	return g, nil
}

// DefaultGrid is the 8x12 theater with the D5-D8/E5-E8 premium block.
func DefaultGrid() Grid {
	g, _ := NewGrid(DefaultRows, DefaultCols, DefaultBestSeats(DefaultRows, DefaultCols))
	return g
}

// DefaultBestSeats returns the center block used as premium seating: the two
// rows ending at the center row and the four columns around the center
// column, clipped to the grid.
func DefaultBestSeats(rows, cols int) []Seat {
	cr, cc := rows/2, cols/2
	var out []Seat
	for r := cr - 1; r <= cr; r++ {
		for c := cc - 2; c <= cc+1; c++ {
			if r >= 0 && r < rows && c >= 0 && c < cols {
				out = append(out, Seat{Row: r, Col: c})
			}
		}
	}
	return out
}

// Contains reports whether the seat lies inside the grid.
func (g Grid) Contains(s Seat) bool {
	return s.Row >= 0 && s.Row < g.Rows && s.Col >= 0 && s.Col < g.Cols
}

// IsBest reports whether the seat is part of the premium block.
func (g Grid) IsBest(s Seat) bool {
	_, ok := g.best[s]
	return ok
}

// BestSeats lists the premium block in row-major order.
func (g Grid) BestSeats() []Seat {
	out := make([]Seat, 0, len(g.best))
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.IsBest(Seat{Row: r, Col: c}) {
				out = append(out, Seat{Row: r, Col: c})
			}
		}
	}
	return out
}

// mask marks the given seats on a rows x cols bitmap; seats outside the
// grid are dropped.
func (g Grid) mask(seats []Seat) [][]bool {
	m := make([][]bool, g.Rows)
	for r := range m {
		m[r] = make([]bool, g.Cols)
	}
	for _, s := range seats {
		if g.Contains(s) {
			m[s.Row][s.Col] = true
		}
	}
	return m
}

// Available lists seats that are neither occupied nor excluded, row-major.
func (g Grid) Available(occupied, excluded []Seat) []Seat {
	taken := g.mask(occupied)
	for _, s := range excluded {
		if g.Contains(s) {
			taken[s.Row][s.Col] = true
		}
	}
	out := make([]Seat, 0, g.Rows*g.Cols)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if !taken[r][c] {
				out = append(out, Seat{Row: r, Col: c})
			}
		}
	}
	return out
}

// Status is the display state of one seat on the seat map.
type Status string

const (
	StatusOccupied  Status = "occupied"
	StatusSelected  Status = "selected"
	StatusBest      Status = "best"
	StatusAvailable Status = "available"
)

// Classify returns the display state of a seat. Occupied wins over
// selected, which wins over the premium marker.
func (g Grid) Classify(s Seat, occupied, selected map[Seat]bool) Status {
	switch {
	case occupied[s]:
		return StatusOccupied
	case selected[s]:
		return StatusSelected
	case g.IsBest(s):
		return StatusBest
	default:
		return StatusAvailable
	}
}

// Row is one rendered row of the seat map.
type Row struct {
	Label string   `json:"label"`
	Seats []Status `json:"seats"`
}

// Map renders the whole grid, row by row, using Classify.
func (g Grid) Map(occupied, selected []Seat) []Row {
	occ := toSet(occupied)
	sel := toSet(selected)
	rows := make([]Row, g.Rows)
	for r := 0; r < g.Rows; r++ {
		row := Row{Label: RowLabel(r), Seats: make([]Status, g.Cols)}
		for c := 0; c < g.Cols; c++ {
			row.Seats[c] = g.Classify(Seat{Row: r, Col: c}, occ, sel)
		}
		rows[r] = row
	}
	return rows
}

func toSet(seats []Seat) map[Seat]bool {
	m := make(map[Seat]bool, len(seats))
	for _, s := range seats {
		m[s] = true
	}
	return m
}
