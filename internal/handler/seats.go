// Package handler exposes the HTTP handlers of the seat suggestion API.
// Errors are answered as JSON {"error": "..."} bodies.
package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/cinema-seat-suggest/internal/config"
	"github.com/iliyamo/cinema-seat-suggest/internal/queue"
	"github.com/iliyamo/cinema-seat-suggest/internal/repository"
	"github.com/iliyamo/cinema-seat-suggest/internal/seatmap"
	"github.com/iliyamo/cinema-seat-suggest/internal/service"
)

var validate = validator.New()

// LayoutStore loads the grid and occupancy of a show.
type LayoutStore interface {
	Layout(ctx context.Context, showID uint64) (*repository.ShowLayout, error)
}

// SeatHandler serves seat maps and recommendations. Layouts may be nil, in
// which case only the stateless endpoints are usable.
type SeatHandler struct {
	Seating    config.SeatingConfig
	PriceCents uint32 // fallback price per seat
	Layouts    LayoutStore
	Events     service.EventPublisher
	Timeout    time.Duration
	Logger     *zap.Logger
}

// recommendRequest is the body of POST /v1/seats/recommend. Rows and Cols
// default to the configured grid. A nil BestSeats selects the default
// premium block; an explicit empty list disables it.
type recommendRequest struct {
	Rows       int      `json:"rows" validate:"gte=0"`
	Cols       int      `json:"cols" validate:"gte=0"`
	Occupied   []string `json:"occupied"`
	Excluded   []string `json:"excluded"`
	BestSeats  []string `json:"best_seats"`
	GroupSize  int      `json:"group_size"`
	Preference string   `json:"preference"`
}

// RecommendResponse is returned by both recommend endpoints.
type RecommendResponse struct {
	ShowID            uint64   `json:"show_id,omitempty"`
	Seats             []string `json:"seats"`
	Contiguous        bool     `json:"contiguous"`
	Score             int      `json:"score"`
	Requested         int      `json:"requested"`
	Complete          bool     `json:"complete"`
	PricePerSeatCents uint32   `json:"price_per_seat_cents"`
	TotalPriceCents   uint32   `json:"total_price_cents"`
}

// MapResponse is the rendered seat map.
type MapResponse struct {
	ShowID uint64        `json:"show_id,omitempty"`
	Rows   int           `json:"rows"`
	Cols   int           `json:"cols"`
	Seats  []seatmap.Row `json:"seats"`
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
}

// grid validates client supplied dimensions against the configured bound.
// Zero means "use the configured grid".
func (h *SeatHandler) grid(rows, cols int, best []string) (seatmap.Grid, error) {
	if rows == 0 {
		rows = h.Seating.Rows
	}
	if cols == 0 {
		cols = h.Seating.Cols
	}
	if rows > h.Seating.MaxGridDim || cols > h.Seating.MaxGridDim {
		return seatmap.Grid{}, seatmap.ErrInvalidGrid
	}
	if best == nil {
		return seatmap.NewGrid(rows, cols, seatmap.DefaultBestSeats(rows, cols))
	}
	seats, err := seatmap.ParseSeats(best)
	if err != nil {
		return seatmap.Grid{}, err
	}
	return seatmap.NewGrid(rows, cols, seats)
}

func (h *SeatHandler) preference(raw string) (seatmap.Preference, error) {
	if raw == "" {
		return seatmap.Center, nil
	}
	return seatmap.ParsePreference(raw)
}

func (h *SeatHandler) respond(c echo.Context, showID uint64, s seatmap.Suggestion, requested int, price uint32) error {
	return c.JSON(http.StatusOK, RecommendResponse{
		ShowID:            showID,
		Seats:             s.IDs(),
		Contiguous:        s.Contiguous,
		Score:             s.Score,
		Requested:         requested,
		Complete:          len(s.Seats) >= requested,
		PricePerSeatCents: price,
		TotalPriceCents:   price * uint32(len(s.Seats)),
	})
}

// Recommend handles POST /v1/seats/recommend for a caller supplied grid.
func (h *SeatHandler) Recommend(c echo.Context) error {
	var req recommendRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid json")
	}
	if req.GroupSize > h.Seating.MaxGroup {
		return badRequest(c, "group_size too large")
	}
	if err := validate.Struct(&req); err != nil {
		return badRequest(c, "invalid grid")
	}
	g, err := h.grid(req.Rows, req.Cols, req.BestSeats)
	if err != nil {
		return badRequest(c, err.Error())
	}
	pref, err := h.preference(req.Preference)
	if err != nil {
		return badRequest(c, err.Error())
	}
	occupied, err := seatmap.ParseSeats(req.Occupied)
	if err != nil {
		return badRequest(c, err.Error())
	}
	excluded, err := seatmap.ParseSeats(req.Excluded)
	if err != nil {
		return badRequest(c, err.Error())
	}

	s := seatmap.NewEngine(g, h.Seating.Weights).Recommend(occupied, excluded, req.GroupSize, pref)
	return h.respond(c, 0, s, req.GroupSize, h.PriceCents)
}

// Map handles GET /v1/seats/map?rows=&cols=&occupied=&selected=.
func (h *SeatHandler) Map(c echo.Context) error {
	rows, err := intParam(c, "rows", 0)
	if err != nil || rows < 0 {
		return badRequest(c, "invalid rows")
	}
	cols, err := intParam(c, "cols", 0)
	if err != nil || cols < 0 {
		return badRequest(c, "invalid cols")
	}
	g, err := h.grid(rows, cols, nil)
	if err != nil {
		return badRequest(c, err.Error())
	}
	occupied, err := seatsParam(c, "occupied")
	if err != nil {
		return badRequest(c, err.Error())
	}
	selected, err := seatsParam(c, "selected")
	if err != nil {
		return badRequest(c, err.Error())
	}
	return c.JSON(http.StatusOK, MapResponse{Rows: g.Rows, Cols: g.Cols, Seats: g.Map(occupied, selected)})
}

// layout loads the show and writes the error response itself when that
// fails; callers return the second value unchanged in that case.
func (h *SeatHandler) layout(c echo.Context) (*repository.ShowLayout, error) {
	id, ok := showIDParam(c)
	if !ok {
		return nil, badRequest(c, "invalid show id")
	}
	ctx := c.Request().Context()
	if h.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.Timeout)
		defer cancel()
	}

	l, err := h.Layouts.Layout(ctx, id)
	switch {
	case err == nil:
		return l, nil
	case errors.Is(err, repository.ErrShowNotFound):
		return nil, c.JSON(http.StatusNotFound, echo.Map{"error": "show not found"})
	case errors.Is(err, repository.ErrHallNotFound):
		return nil, c.JSON(http.StatusNotFound, echo.Map{"error": "hall not found"})
	case errors.Is(err, repository.ErrLayoutUndefined):
		return nil, c.JSON(http.StatusConflict, echo.Map{"error": "hall layout undefined"})
	default:
		h.Logger.Error("load layout failed", zap.Uint64("show_id", id), zap.Error(err))
		return nil, c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
}

// showGrid builds the grid of a stored layout with the default premium block.
func showGrid(l *repository.ShowLayout) (seatmap.Grid, error) {
	return seatmap.NewGrid(l.Rows, l.Cols, seatmap.DefaultBestSeats(l.Rows, l.Cols))
}

// ShowMap handles GET /v1/shows/:id/seats/map?selected=.
func (h *SeatHandler) ShowMap(c echo.Context) error {
	selected, err := seatsParam(c, "selected")
	if err != nil {
		return badRequest(c, err.Error())
	}
	l, err := h.layout(c)
	if l == nil {
		return err
	}
	g, err := showGrid(l)
	if err != nil {
		return c.JSON(http.StatusConflict, echo.Map{"error": "hall layout undefined"})
	}
	return c.JSON(http.StatusOK, MapResponse{ShowID: l.ShowID, Rows: g.Rows, Cols: g.Cols, Seats: g.Map(l.Occupied, selected)})
}

// ShowRecommend handles GET /v1/shows/:id/seats/recommend. The suggestion
// is published as a seats.suggested event; publishing errors are logged.
func (h *SeatHandler) ShowRecommend(c echo.Context) error {
	size, err := intParam(c, "group_size", 0)
	if err != nil {
		return badRequest(c, "invalid group_size")
	}
	if size > h.Seating.MaxGroup {
		return badRequest(c, "group_size too large")
	}
	pref, err := h.preference(c.QueryParam("preference"))
	if err != nil {
		return badRequest(c, err.Error())
	}
	excluded, err := seatsParam(c, "exclude")
	if err != nil {
		return badRequest(c, err.Error())
	}
	l, err := h.layout(c)
	if l == nil {
		return err
	}
	g, err := showGrid(l)
	if err != nil {
		return c.JSON(http.StatusConflict, echo.Map{"error": "hall layout undefined"})
	}

	s := seatmap.NewEngine(g, h.Seating.Weights).Recommend(l.Occupied, excluded, size, pref)
	price := l.BasePriceCents
	if price == 0 {
		price = h.PriceCents
	}

	if len(s.Seats) > 0 && h.Events != nil {
		ev := queue.SeatsSuggestedEvent{
			EventID:         uuid.NewString(),
			ShowID:          l.ShowID,
			HallID:          l.HallID,
			HallName:        l.HallName,
			MovieTitle:      l.Title,
			GroupSize:       size,
			Preference:      string(pref),
			SeatLabels:      s.IDs(),
			Contiguous:      s.Contiguous,
			Score:           s.Score,
			TotalPriceCents: price * uint32(len(s.Seats)),
			SuggestedAt:     time.Now().UTC().Format(time.RFC3339),
		}
		if err := h.Events.PublishSeatsSuggested(c.Request().Context(), ev); err != nil {
			h.Logger.Warn("publish seats.suggested failed", zap.Uint64("show_id", l.ShowID), zap.Error(err))
		}
	}
	return h.respond(c, l.ShowID, s, size, price)
}
