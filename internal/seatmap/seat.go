// Package seatmap scores the seats of a theater grid and suggests the best
// group of seats for a party. Everything in this package is a pure
// computation over its inputs; nothing is cached between calls.
package seatmap

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidSeat is returned when a seat identifier cannot be parsed.
var ErrInvalidSeat = errors.New("invalid seat id")

// Seat is a zero-based coordinate in a theater grid. Row 0 is the row
// closest to the screen (label A) and Col 0 is the leftmost seat (number 1).
type Seat struct {
	Row int
	Col int
}

// ID renders the seat as a row label followed by its 1-based number, e.g. D5.
func (s Seat) ID() string {
	return RowLabel(s.Row) + strconv.Itoa(s.Col+1)
}

func (s Seat) String() string { return s.ID() }

// less orders seats row-major: by row, then left to right.
func (s Seat) less(o Seat) bool {
	if s.Row != o.Row {
		return s.Row < o.Row
	}
	return s.Col < o.Col
}

// RowLabel converts a zero-based row index to an alphabetical label
// (A..Z, AA, AB, ...). Negative indices yield an empty string.
func RowLabel(i int) string {
	if i < 0 {
		return ""
	}
	res := []byte{}
	for {
		res = append(res, byte('A'+i%26))
		i = i/26 - 1
		if i < 0 {
			break
		}
	}
	for j, k := 0, len(res)-1; j < k; j, k = j+1, k-1 {
		res[j], res[k] = res[k], res[j]
	}
	return string(res)
}

// RowIndex converts a row label like A or AA into its zero-based index.
func RowIndex(label string) (int, bool) {
	s := strings.ToUpper(strings.TrimSpace(label))
	if s == "" {
		return -1, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch < 'A' || ch > 'Z' {
			return -1, false
		}
		n = n*26 + int(ch-'A'+1)
	}
	return n - 1, true
}

// ParseSeat parses identifiers such as "D5", "aa12" or " H10 ".
func ParseSeat(id string) (Seat, error) {
	s := strings.ToUpper(strings.TrimSpace(id))
	split := 0
	for split < len(s) && s[split] >= 'A' && s[split] <= 'Z' {
		split++
	}
	if split == 0 || split == len(s) {
		return Seat{}, fmt.Errorf("%w: %q", ErrInvalidSeat, id)
	}
	row, ok := RowIndex(s[:split])
	if !ok {
		return Seat{}, fmt.Errorf("%w: %q", ErrInvalidSeat, id)
	}
	num, err := strconv.Atoi(s[split:])
	if err != nil || num < 1 {
		return Seat{}, fmt.Errorf("%w: %q", ErrInvalidSeat, id)
	}
	return Seat{Row: row, Col: num - 1}, nil
}

// ParseSeats parses every identifier and fails on the first malformed one.
// Blank entries are skipped so that "A1,,B2" style inputs are tolerated.
func ParseSeats(ids []string) ([]Seat, error) {
	out := make([]Seat, 0, len(ids))
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			continue
		}
		s, err := ParseSeat(id)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// IDs renders a list of seats as identifiers, preserving order.
func IDs(seats []Seat) []string {
	out := make([]string, len(seats))
	for i, s := range seats {
		out[i] = s.ID()
	}
	return out
}
