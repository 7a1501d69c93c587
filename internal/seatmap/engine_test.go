package seatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bookedSeats is the occupancy shown on the demo seat selection screen.
var bookedSeats = []string{"A3", "A4", "B7", "C5", "C6", "E8", "F2", "G9", "G10"}

func mustSeats(t *testing.T, ids ...string) []Seat {
	t.Helper()
	seats, err := ParseSeats(ids)
	require.NoError(t, err)
	return seats
}

func newDefaultEngine() *Engine {
	return NewEngine(DefaultGrid(), DefaultWeights())
}

func TestDefaultGridBestSeats(t *testing.T) {
	g := DefaultGrid()
	assert.Equal(t, []string{"D5", "D6", "D7", "D8", "E5", "E6", "E7", "E8"}, IDs(g.BestSeats()))
}

func TestNewGridValidation(t *testing.T) {
	_, err := NewGrid(0, 12, nil)
	assert.ErrorIs(t, err, ErrInvalidGrid)
	_, err = NewGrid(8, -1, nil)
	assert.ErrorIs(t, err, ErrInvalidGrid)
	_, err = NewGrid(2, 2, []Seat{{Row: 2, Col: 0}})
	assert.ErrorIs(t, err, ErrInvalidGrid)
}

func TestParsePreference(t *testing.T) {
	p, err := ParsePreference(" Center ")
	require.NoError(t, err)
	assert.Equal(t, Center, p)

	_, err = ParsePreference("balcony")
	assert.ErrorIs(t, err, ErrInvalidPreference)
}

func TestScore(t *testing.T) {
	e := newDefaultEngine()
	occ := mustSeats(t, bookedSeats...)

	tests := []struct {
		seat string
		pref Preference
		occ  []Seat
		want int
	}{
		{"E6", Center, occ, 245},
		// E8 sits right next to E7.
		{"E7", Center, occ, 220},
		// C5 and C6 are both inside the radius; C5 at distance 2 from E5 is not.
		{"D6", Center, occ, 175},
		{"E5", Center, occ, 240},
		{"A1", Aisle, nil, 150},
		{"A2", Aisle, nil, 100},
		{"A12", Aisle, nil, 150},
		{"A6", Aisle, nil, 0},
		{"A7", Front, nil, 180},
		{"H7", Back, nil, 235},
	}
	for _, tt := range tests {
		t.Run(string(tt.pref)+"/"+tt.seat, func(t *testing.T) {
			s, err := ParseSeat(tt.seat)
			require.NoError(t, err)
			assert.Equal(t, tt.want, e.Score(s, tt.occ, tt.pref))
		})
	}
}

func TestScorePenaltiesStack(t *testing.T) {
	e := newDefaultEngine()
	seat := Seat{Row: 0, Col: 5}
	free := e.Score(seat, nil, Front)
	neighbours := mustSeats(t, "A5", "A7", "B5", "B6", "B7")
	assert.Equal(t, free-5*30, e.Score(seat, neighbours, Front))
	// Two seats away is outside the strict radius.
	assert.Equal(t, free, e.Score(seat, mustSeats(t, "A4", "C6"), Front))
}

func TestRecommendBookedScenarios(t *testing.T) {
	e := newDefaultEngine()
	occ := mustSeats(t, bookedSeats...)

	tests := []struct {
		name       string
		size       int
		pref       Preference
		want       []string
		score      int
		contiguous bool
	}{
		{"center pair", 2, Center, []string{"E5", "E6"}, 585, true},
		{"front trio", 3, Front, []string{"A9", "A10", "A11"}, 613, true},
		{"back four", 4, Back, []string{"H4", "H5", "H6", "H7"}, 1022, true},
		{"aisle single", 1, Aisle, []string{"A1"}, 250, true},
		{"aisle pair", 2, Aisle, []string{"A11", "A12"}, 350, true},
		{"center six", 6, Center, []string{"E2", "E3", "E4", "E5", "E6", "E7"}, 1285, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Recommend(occ, nil, tt.size, tt.pref)
			assert.Equal(t, tt.want, got.IDs())
			assert.Equal(t, tt.score, got.Score)
			assert.Equal(t, tt.contiguous, got.Contiguous)
		})
	}
}

func TestRecommendEmptyGridCenter(t *testing.T) {
	e := newDefaultEngine()
	for size, want := range map[int][]string{
		2: {"E6", "E7"},
		3: {"E6", "E7", "E8"},
		4: {"E5", "E6", "E7", "E8"},
	} {
		got := e.Recommend(nil, nil, size, Center)
		assert.Equal(t, want, got.IDs(), "size %d", size)
		assert.True(t, got.Contiguous)
	}
}

func TestRecommendEmptyGridFrontPrefersPremiumBlock(t *testing.T) {
	got := newDefaultEngine().Recommend(nil, nil, 4, Front)
	assert.Equal(t, []string{"D5", "D6", "D7", "D8"}, got.IDs())
	assert.Equal(t, 828, got.Score)
}

func TestRecommendAisleSingleOnEmptyGrid(t *testing.T) {
	got := newDefaultEngine().Recommend(nil, nil, 1, Aisle)
	require.Len(t, got.Seats, 1)
	assert.Contains(t, []int{0, DefaultCols - 1}, got.Seats[0].Col)
	assert.Equal(t, "A1", got.Seats[0].ID())
}

func TestRecommendFullRow(t *testing.T) {
	got := newDefaultEngine().Recommend(mustSeats(t, bookedSeats...), nil, 12, Back)
	assert.True(t, got.Contiguous)
	assert.Equal(t, []string{"H1", "H2", "H3", "H4", "H5", "H6", "H7", "H8", "H9", "H10", "H11", "H12"}, got.IDs())
}

func TestRecommendSkipsExcluded(t *testing.T) {
	e := newDefaultEngine()
	occ := mustSeats(t, bookedSeats...)
	got := e.Recommend(occ, mustSeats(t, "E5", "E6"), 2, Center)
	assert.NotContains(t, got.IDs(), "E5")
	assert.NotContains(t, got.IDs(), "E6")
	assert.True(t, got.Contiguous)
	assert.Len(t, got.Seats, 2)
}

func TestRecommendFallbackWhenNoRowFits(t *testing.T) {
	e := newDefaultEngine()
	occ := mustSeats(t, bookedSeats...)
	got := e.Recommend(occ, nil, 13, Center)
	assert.False(t, got.Contiguous)
	assert.Equal(t, []string{
		"D6", "D7", "D8", "D10",
		"E4", "E5", "E6", "E7", "E10", "E11",
		"F5", "F6", "G7",
	}, got.IDs())
}

func TestRecommendFallbackAcrossGap(t *testing.T) {
	g, err := NewGrid(1, 6, nil)
	require.NoError(t, err)
	e := NewEngine(g, DefaultWeights())
	occ := []Seat{{Row: 0, Col: 2}}

	got := e.Recommend(occ, nil, 3, Center)
	assert.True(t, got.Contiguous)
	assert.Equal(t, []string{"A4", "A5", "A6"}, got.IDs())
	assert.Equal(t, 655, got.Score)

	got = e.Recommend(occ, nil, 4, Center)
	assert.False(t, got.Contiguous)
	assert.Equal(t, []string{"A1", "A4", "A5", "A6"}, got.IDs())
	assert.Equal(t, 740, got.Score)
}

func TestRecommendShortResult(t *testing.T) {
	e := newDefaultEngine()
	occ := mustSeats(t, bookedSeats...)
	remaining := DefaultRows*DefaultCols - len(occ)

	for _, size := range []int{remaining, remaining + 10} {
		got := e.Recommend(occ, nil, size, Center)
		assert.False(t, got.Contiguous)
		assert.Equal(t, IDs(e.Grid().Available(occ, nil)), got.IDs(), "size %d", size)
	}
}

func TestRecommendDegenerateInputs(t *testing.T) {
	e := newDefaultEngine()
	assert.Empty(t, e.Recommend(nil, nil, 0, Center).Seats)
	assert.Empty(t, e.Recommend(nil, nil, -3, Center).Seats)

	all := e.Grid().Available(nil, nil)
	got := e.Recommend(all, nil, 2, Center)
	assert.Empty(t, got.Seats)
	assert.False(t, got.Contiguous)

	got = e.Recommend(nil, all, 2, Center)
	assert.Empty(t, got.Seats)
}

func TestRecommendIgnoresSeatsOutsideGrid(t *testing.T) {
	e := newDefaultEngine()
	outside := []Seat{{Row: 40, Col: 3}, {Row: 2, Col: 30}}
	assert.Equal(t, e.Recommend(nil, nil, 2, Center), e.Recommend(outside, outside, 2, Center))
}

func TestRecommendProperties(t *testing.T) {
	e := newDefaultEngine()
	occ := mustSeats(t, bookedSeats...)
	excl := mustSeats(t, "D5", "H1", "E6")
	blocked := toSet(append(append([]Seat{}, occ...), excl...))
	available := len(e.Grid().Available(occ, excl))

	for _, pref := range Preferences {
		for size := 1; size <= 20; size++ {
			first := e.Recommend(occ, excl, size, pref)
			second := e.Recommend(occ, excl, size, pref)
			assert.Equal(t, first, second, "deterministic %s/%d", pref, size)

			assert.LessOrEqual(t, len(first.Seats), size)
			if available >= size {
				assert.Len(t, first.Seats, size, "%s/%d", pref, size)
			}
			for i, s := range first.Seats {
				assert.False(t, blocked[s], "%s suggested for %s/%d", s, pref, size)
				if i > 0 {
					assert.True(t, first.Seats[i-1].less(s), "row-major order for %s/%d", pref, size)
				}
			}
			if first.Contiguous {
				for i := 1; i < len(first.Seats); i++ {
					assert.Equal(t, first.Seats[0].Row, first.Seats[i].Row)
					assert.Equal(t, first.Seats[i-1].Col+1, first.Seats[i].Col)
				}
			}
		}
	}
}

func TestRecommendLargeGrid(t *testing.T) {
	g, err := NewGrid(200, 300, DefaultBestSeats(200, 300))
	require.NoError(t, err)
	e := NewEngine(g, DefaultWeights())

	got := e.Recommend(nil, nil, 5, Center)
	assert.Equal(t, []string{"CW149", "CW150", "CW151", "CW152", "CW153"}, got.IDs())
	assert.Equal(t, 1270, got.Score)
}

func TestRecommendTunedWeights(t *testing.T) {
	w := DefaultWeights()
	w.PenaltyRadius = 0
	e := NewEngine(DefaultGrid(), w)
	occ := mustSeats(t, bookedSeats...)
	// Without the penalty E7 beside the booked E8 becomes attractive again.
	e7, err := ParseSeat("E7")
	require.NoError(t, err)
	assert.Equal(t, 250, e.Score(e7, occ, Center))
}

func TestPackageRecommend(t *testing.T) {
	got := Recommend(mustSeats(t, bookedSeats...), nil, 2, Center)
	assert.Equal(t, []string{"E5", "E6"}, IDs(got))
}

func TestGridMap(t *testing.T) {
	g := DefaultGrid()
	rows := g.Map(mustSeats(t, "A3", "D5"), mustSeats(t, "A4", "D6", "A3"))
	require.Len(t, rows, DefaultRows)
	assert.Equal(t, "A", rows[0].Label)
	assert.Equal(t, StatusOccupied, rows[0].Seats[2])
	assert.Equal(t, StatusSelected, rows[0].Seats[3])
	assert.Equal(t, StatusAvailable, rows[0].Seats[0])
	assert.Equal(t, StatusOccupied, rows[3].Seats[4])
	assert.Equal(t, StatusSelected, rows[3].Seats[5])
	assert.Equal(t, StatusBest, rows[3].Seats[6])
}
