package service

import (
	"time"

	"barkeep/pkg/model"
)

// CanCancel reports whether a customer may still cancel the booking at
// the given instant. Pure: no side effects, no clock reads. Only a
// Pending booking inside the cutoff can be cancelled; everything about
// missing or already-cancelled bookings is the caller's problem.
func CanCancel(booking *model.Booking, now time.Time, cutoff time.Duration) bool {
	if booking.Status != model.BookingPending {
		return false
	}

	scheduledAt, err := booking.ScheduledAt()
	if err != nil {
		return false
	}

	return scheduledAt.Sub(now) >= cutoff
}
