package errors

import "errors"

var (
	// ErrSlotHeld means another account already holds the table slot.
	ErrSlotHeld = errors.New("table slot is held by another account")

	ErrTableNotInBar = errors.New("table does not belong to bar")
)
