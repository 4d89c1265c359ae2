package entity

import "errors"

var (
	ErrNotFound           = errors.New("record not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrPlotNumberTaken    = errors.New("plot number already used in this project")

	// ErrPlotUnavailable is returned by the guarded plot transition when the
	// plot is already Booked or Sold. Prevents double-booking races.
	ErrPlotUnavailable = errors.New("plot is not available for booking")
)
