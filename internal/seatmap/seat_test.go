package seatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowLabel(t *testing.T) {
	cases := map[int]string{0: "A", 7: "H", 25: "Z", 26: "AA", 27: "AB", 51: "AZ", 52: "BA", 100: "CW", 701: "ZZ", 702: "AAA"}
	for idx, want := range cases {
		assert.Equal(t, want, RowLabel(idx), "index %d", idx)
		got, ok := RowIndex(want)
		require.True(t, ok)
		assert.Equal(t, idx, got, "label %s", want)
	}
	assert.Equal(t, "", RowLabel(-1))
}

func TestRowIndexRejectsNonLetters(t *testing.T) {
	for _, in := range []string{"", " ", "A1", "É", "-"} {
		_, ok := RowIndex(in)
		assert.False(t, ok, "input %q", in)
	}
}

func TestParseSeat(t *testing.T) {
	tests := []struct {
		in   string
		want Seat
	}{
		{"A1", Seat{Row: 0, Col: 0}},
		{"d5", Seat{Row: 3, Col: 4}},
		{" H12 ", Seat{Row: 7, Col: 11}},
		{"AA3", Seat{Row: 26, Col: 2}},
		{"G10", Seat{Row: 6, Col: 9}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSeat(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSeatInvalid(t *testing.T) {
	for _, in := range []string{"", "A", "12", "A0", "A-1", "1A", "A1B", "A 1"} {
		_, err := ParseSeat(in)
		assert.ErrorIs(t, err, ErrInvalidSeat, "input %q", in)
	}
}

func TestSeatID(t *testing.T) {
	assert.Equal(t, "E8", Seat{Row: 4, Col: 7}.ID())
	assert.Equal(t, "AB10", Seat{Row: 27, Col: 9}.String())
}

func TestParseSeatsSkipsBlanks(t *testing.T) {
	seats, err := ParseSeats([]string{"A1", "", "  ", "B2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "B2"}, IDs(seats))

	_, err = ParseSeats([]string{"A1", "bogus"})
	assert.ErrorIs(t, err, ErrInvalidSeat)
}
