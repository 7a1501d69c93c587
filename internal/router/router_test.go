package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/iliyamo/cinema-seat-suggest/internal/config"
	"github.com/iliyamo/cinema-seat-suggest/internal/handler"
	"github.com/iliyamo/cinema-seat-suggest/internal/seatmap"
	"github.com/iliyamo/cinema-seat-suggest/internal/service"
)

func newServer() *echo.Echo {
	return New(Deps{
		Seats: &handler.SeatHandler{
			Seating:    config.SeatingConfig{Rows: 8, Cols: 12, MaxGroup: 10, MaxGridDim: 500, Weights: seatmap.DefaultWeights()},
			PriceCents: 1500,
			Events:     service.NoopPublisher{},
			Logger:     zap.NewNop(),
		},
		Cache:     config.CacheConfig{Enabled: true},
		RateLimit: config.RateLimitConfig{Enabled: true},
		Logger:    zap.NewNop(),
	})
}

func TestProbes(t *testing.T) {
	e := newServer()
	for _, path := range []string{"/healthz", "/readyz"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestSeatRoutesWithoutBackends(t *testing.T) {
	e := newServer()

	req := httptest.NewRequest(http.MethodPost, "/v1/seats/recommend", strings.NewReader(`{"group_size":2}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/shows/1/seats/map", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
