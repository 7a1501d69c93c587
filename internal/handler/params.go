package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinema-seat-suggest/internal/seatmap"
)

var errInvalidNumber = errors.New("invalid number")

// seatsParam collects seat ids from a query parameter. Both repeated
// parameters and comma separated lists are accepted.
func seatsParam(c echo.Context, name string) ([]seatmap.Seat, error) {
	var ids []string
	for _, v := range c.QueryParams()[name] {
		ids = append(ids, strings.Split(v, ",")...)
	}
	return seatmap.ParseSeats(ids)
}

// intParam returns def when the parameter is absent.
func intParam(c echo.Context, name string, def int) (int, error) {
	v := strings.TrimSpace(c.QueryParam(name))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errInvalidNumber
	}
	return n, nil
}

func showIDParam(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
