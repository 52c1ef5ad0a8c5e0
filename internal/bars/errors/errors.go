package errors

import "errors"

var (
	ErrBarNotFound = errors.New("bar not found")

	ErrTableNotFound = errors.New("table not found")

	ErrDrinkNotFound = errors.New("drink not found")

	ErrInvalidID = errors.New("invalid ID format")

	ErrDuplicateLabel = errors.New("table label already exists in bar")
)
