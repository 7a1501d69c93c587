package seatmap

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Preference biases scoring towards an area of the theater.
type Preference string

const (
	Center Preference = "center"
	Front  Preference = "front"
	Back   Preference = "back"
	Aisle  Preference = "aisle"
)

// Preferences lists every supported preference.
var Preferences = []Preference{Center, Front, Back, Aisle}

// ErrInvalidPreference is returned by ParsePreference for unknown values.
var ErrInvalidPreference = errors.New("invalid preference")

// ParsePreference accepts any casing of the supported values.
func ParsePreference(s string) (Preference, error) {
	p := Preference(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Preferences {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPreference, s)
}

// Weights are the tunable constants of the scoring heuristic.
type Weights struct {
	BestSeatBonus int     // added to seats in the premium block
	TogetherBonus int     // added once to every contiguous group
	PenaltyRadius float64 // occupied seats strictly closer than this are penalised
	PenaltyPoints int     // subtracted per nearby occupied seat
}

// DefaultWeights returns the weights the booking screen has always used.
func DefaultWeights() Weights {
	return Weights{
		BestSeatBonus: 50,
		TogetherBonus: 100,
		PenaltyRadius: 2.0,
		PenaltyPoints: 30,
	}
}

// Suggestion is the outcome of one Recommend call.
type Suggestion struct {
	Seats      []Seat // row-major, never longer than the requested size
	Contiguous bool   // false when the fallback ranking produced the seats
	Score      int
}

// IDs returns the suggested seat identifiers in display order.
func (s Suggestion) IDs() []string { return IDs(s.Seats) }

// Engine scores seats of one grid. It holds no per-call state and is safe
// for concurrent use.
type Engine struct {
	grid    Grid
	weights Weights
	near    []Seat // offsets within the penalty radius, (0,0) included
}

// NewEngine precomputes the neighbourhood used by the occupancy penalty.
func NewEngine(g Grid, w Weights) *Engine {
	e := &Engine{grid: g, weights: w}
	if w.PenaltyRadius > 0 {
		k := int(math.Ceil(w.PenaltyRadius))
		for dr := -k; dr <= k; dr++ {
			for dc := -k; dc <= k; dc++ {
				if math.Hypot(float64(dr), float64(dc)) < w.PenaltyRadius {
					e.near = append(e.near, Seat{Row: dr, Col: dc})
				}
			}
		}
	}
	return e
}

// Grid returns the layout the engine scores.
func (e *Engine) Grid() Grid { return e.grid }

// Score rates a single seat for the preference given the occupied seats.
// The result is unclamped and may be negative.
func (e *Engine) Score(s Seat, occupied []Seat, pref Preference) int {
	return e.score(s, e.grid.mask(occupied), pref)
}

func (e *Engine) score(s Seat, occ [][]bool, pref Preference) int {
	g := e.grid
	centerRow, centerCol := g.Rows/2, g.Cols/2
	lastCol := g.Cols - 1

	score := 0
	switch pref {
	case Center:
		score += 100 - abs(s.Row-centerRow)*10
		score += 100 - abs(s.Col-centerCol)*5
	case Front:
		score += 100 - s.Row*15
		score += 80 - abs(s.Col-centerCol)*3
	case Back:
		score += 50 + s.Row*15
		score += 80 - abs(s.Col-centerCol)*3
	case Aisle:
		if s.Col == 0 || s.Col == lastCol {
			score += 150
		} else if s.Col == 1 || s.Col == lastCol-1 {
			score += 100
		}
	}

	if g.IsBest(s) {
		score += e.weights.BestSeatBonus
	}

	for _, d := range e.near {
		n := Seat{Row: s.Row + d.Row, Col: s.Col + d.Col}
		if g.Contains(n) && occ[n.Row][n.Col] {
			score -= e.weights.PenaltyPoints
		}
	}
	return score
}

// Recommend suggests groupSize seats for the party. It prefers the
// best-scoring run of consecutive seats within one row; when no row has
// room for the whole party it falls back to the individually best seats,
// which may be fewer than requested. Seats in occupied or excluded are
// never suggested. Ties go to the seat or window met first in row-major
// order.
func (e *Engine) Recommend(occupied, excluded []Seat, groupSize int, pref Preference) Suggestion {
	if groupSize <= 0 {
		return Suggestion{Seats: []Seat{}}
	}
	g := e.grid
	occ := g.mask(occupied)
	taken := g.mask(occupied)
	for _, s := range excluded {
		if g.Contains(s) {
			taken[s.Row][s.Col] = true
		}
	}

	scores := make([][]int, g.Rows)
	for r := 0; r < g.Rows; r++ {
		scores[r] = make([]int, g.Cols)
		for c := 0; c < g.Cols; c++ {
			if !taken[r][c] {
				scores[r][c] = e.score(Seat{Row: r, Col: c}, occ, pref)
			}
		}
	}

	if s, ok := e.bestWindow(taken, scores, groupSize); ok {
		return s
	}
	return e.bestIndividuals(taken, scores, groupSize)
}

// bestWindow slides a window of groupSize over every run of consecutive
// free seats, row by row.
func (e *Engine) bestWindow(taken [][]bool, scores [][]int, groupSize int) (Suggestion, bool) {
	found := false
	bestRow, bestStart, bestScore := 0, 0, 0
	for r := 0; r < e.grid.Rows; r++ {
		run, sum := 0, 0
		for c := 0; c < e.grid.Cols; c++ {
			if taken[r][c] {
				run, sum = 0, 0
				continue
			}
			run++
			sum += scores[r][c]
			if run > groupSize {
				sum -= scores[r][c-groupSize]
				run = groupSize
			}
			if run == groupSize {
				total := sum + e.weights.TogetherBonus
				if !found || total > bestScore {
					found = true
					bestRow, bestStart, bestScore = r, c-groupSize+1, total
				}
			}
		}
	}
	if !found {
		return Suggestion{}, false
	}
	seats := make([]Seat, groupSize)
	for i := range seats {
		seats[i] = Seat{Row: bestRow, Col: bestStart + i}
	}
	return Suggestion{Seats: seats, Contiguous: true, Score: bestScore}, true
}

func (e *Engine) bestIndividuals(taken [][]bool, scores [][]int, groupSize int) Suggestion {
	type ranked struct {
		seat  Seat
		score int
	}
	var pool []ranked
	for r := 0; r < e.grid.Rows; r++ {
		for c := 0; c < e.grid.Cols; c++ {
			if !taken[r][c] {
				pool = append(pool, ranked{Seat{Row: r, Col: c}, scores[r][c]})
			}
		}
	}
	sort.SliceStable(pool, func(i, j int) bool { return pool[i].score > pool[j].score })
	if len(pool) > groupSize {
		pool = pool[:groupSize]
	}

	out := Suggestion{Seats: make([]Seat, len(pool))}
	for i, p := range pool {
		out.Seats[i] = p.seat
		out.Score += p.score
	}
	sort.Slice(out.Seats, func(i, j int) bool { return out.Seats[i].less(out.Seats[j]) })
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

var defaultEngine = NewEngine(DefaultGrid(), DefaultWeights())

// Recommend runs the default 8x12 engine and returns the suggested seats.
func Recommend(occupied, excluded []Seat, groupSize int, pref Preference) []Seat {
	return defaultEngine.Recommend(occupied, excluded, groupSize, pref).Seats
}
