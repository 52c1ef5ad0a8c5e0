package kafka

import (
	"context"
	"time"
)

// Topics used by the booking platform.
const (
	TopicBookingEvents = "booking-events"
	TopicHoldEvents    = "hold-events"

	DLQBookings = "dlq-bookings"
	DLQHolds    = "dlq-holds"
)

// Booking lifecycle event types.
const (
	EventBookingCreated   = "booking.created"
	EventBookingConfirmed = "booking.confirmed"
	EventBookingCancelled = "booking.cancelled"
	EventBookingCompleted = "booking.completed"

	EventHoldPlaced   = "hold.placed"
	EventHoldReleased = "hold.released"
)

// BookingEvent is the payload published on every lifecycle transition.
// Consumers key on BookingID so per-booking ordering holds.
type BookingEvent struct {
	BookingID    string    `json:"booking_id"`
	AccountID    string    `json:"account_id"`
	BarID        string    `json:"bar_id"`
	BookingDate  string    `json:"booking_date"`
	BookingClock string    `json:"booking_clock"`
	TableIDs     []string  `json:"table_ids"`
	Status       string    `json:"status"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// HoldEvent announces a hold being placed or released on a table slot.
type HoldEvent struct {
	BarID      string    `json:"bar_id"`
	TableID    string    `json:"table_id"`
	AccountID  string    `json:"account_id"`
	Date       string    `json:"date"`
	Clock      string    `json:"clock"`
	HeldUntil  time.Time `json:"held_until,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher is the narrow surface services publish through. The
// concrete Producer satisfies it; tests swap in a recorder.
type EventPublisher interface {
	Publish(ctx context.Context, msg Message) error
}

// PublishBookingEvent builds and publishes a booking lifecycle event.
// Publish failures are the caller's to log; the booking itself is
// already persisted by the time this runs.
func PublishBookingEvent(ctx context.Context, publisher EventPublisher, eventType string, event BookingEvent) error {
	msg := NewMessage().
		WithKey(event.BookingID).
		WithValue(event).
		WithEventType(eventType).
		WithSource("bookings").
		Build()

	return publisher.Publish(ctx, msg)
}

// PublishHoldEvent builds and publishes a hold event keyed by table
// slot so releases for the same slot stay ordered.
func PublishHoldEvent(ctx context.Context, publisher EventPublisher, eventType string, event HoldEvent) error {
	msg := NewMessage().
		WithKey(event.BarID + ":" + event.TableID + ":" + event.Date + ":" + event.Clock).
		WithValue(event).
		WithEventType(eventType).
		WithSource("holds").
		Build()

	return publisher.Publish(ctx, msg)
}
