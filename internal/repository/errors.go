// Package repository reads the seating inventory of shows from MySQL.
// These sentinel values allow handlers to distinguish between failure
// scenarios without inspecting driver errors.
package repository

import "errors"

// ErrShowNotFound indicates that a show was not located in the DB.
var ErrShowNotFound = errors.New("show not found")

// ErrHallNotFound is returned when a hall lookup fails.
var ErrHallNotFound = errors.New("hall not found")

// ErrLayoutUndefined is returned when a hall has no seat_rows/seat_cols or
// no generated seats, so no grid can be built for it.
var ErrLayoutUndefined = errors.New("hall layout undefined")
