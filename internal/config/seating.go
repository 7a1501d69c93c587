package config

import "github.com/iliyamo/cinema-seat-suggest/internal/seatmap"

// SeatingConfig carries the default theater geometry and the scoring
// weights. Requests may override the geometry but never the weights.
type SeatingConfig struct {
	Rows       int
	Cols       int
	MaxGroup   int // largest party a single request may ask for
	MaxGridDim int // largest rows or cols value a request may declare
	Weights    seatmap.Weights
}

// LoadSeatingConfig reads SEAT_* variables. Invalid dimensions fall back to
// the 8x12 theater.
func LoadSeatingConfig() SeatingConfig {
	def := seatmap.DefaultWeights()
	cfg := SeatingConfig{
		Rows:       envInt("SEAT_GRID_ROWS", seatmap.DefaultRows),
		Cols:       envInt("SEAT_GRID_COLS", seatmap.DefaultCols),
		MaxGroup:   envInt("SEAT_MAX_GROUP", 10),
		MaxGridDim: envInt("SEAT_MAX_GRID_DIM", 500),
		Weights: seatmap.Weights{
			BestSeatBonus: envInt("SEAT_BEST_BONUS", def.BestSeatBonus),
			TogetherBonus: envInt("SEAT_TOGETHER_BONUS", def.TogetherBonus),
			PenaltyRadius: envFloat("SEAT_PENALTY_RADIUS", def.PenaltyRadius),
			PenaltyPoints: envInt("SEAT_PENALTY_POINTS", def.PenaltyPoints),
		},
	}
	if cfg.Rows < 1 || cfg.Cols < 1 {
		cfg.Rows, cfg.Cols = seatmap.DefaultRows, seatmap.DefaultCols
	}
	if cfg.MaxGroup < 1 {
		cfg.MaxGroup = 1
	}
	if cfg.MaxGridDim < cfg.Rows || cfg.MaxGridDim < cfg.Cols {
		cfg.MaxGridDim = max(cfg.Rows, cfg.Cols)
	}
	return cfg
}

// Grid builds the default theater grid with its premium center block.
func (c SeatingConfig) Grid() seatmap.Grid {
	g, err := seatmap.NewGrid(c.Rows, c.Cols, seatmap.DefaultBestSeats(c.Rows, c.Cols))
	if err != nil {
		return seatmap.DefaultGrid()
	}
	return g
}
