package errors

import "errors"

var (
	ErrNotFound = errors.New("operating window not found")

	ErrInvalidID = errors.New("invalid operating window ID format")

	// ErrNoWindow means the bar has no window configured for the date.
	ErrNoWindow = errors.New("no operating window for date")

	// ErrOutsideWindow means a window exists but the clock falls
	// outside its open interval.
	ErrOutsideWindow = errors.New("clock outside operating window")
)
