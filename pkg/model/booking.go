package model

import (
	"time"
)

// BookingStatus is the lifecycle state of a booking. Bookings are never
// hard-deleted; the status is the only lifecycle.
type BookingStatus int

const (
	BookingPending   BookingStatus = 0
	BookingCancelled BookingStatus = 1
	BookingConfirmed BookingStatus = 2
	BookingCompleted BookingStatus = 3
)

func (s BookingStatus) String() string {
	switch s {
	case BookingPending:
		return "pending"
	case BookingCancelled:
		return "cancelled"
	case BookingConfirmed:
		return "confirmed"
	case BookingCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

func (s BookingStatus) Valid() bool {
	return s >= BookingPending && s <= BookingCompleted
}

// CanTransitionTo reports whether the state machine permits moving from s to
// target. A cancelled booking is terminal; everything else only moves forward:
// pending -> cancelled | confirmed, confirmed -> completed.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	switch s {
	case BookingPending:
		return target == BookingCancelled || target == BookingConfirmed
	case BookingConfirmed:
		return target == BookingCompleted
	default:
		return false
	}
}

type Booking struct {
	ID            string         `json:"id,omitempty" bson:"_id,omitempty"`
	AccountID     string         `json:"account_id" bson:"account_id" validate:"required"`
	BarID         string         `json:"bar_id" bson:"bar_id" validate:"required"`
	BookingDate   string         `json:"booking_date" bson:"booking_date" validate:"required,booking_date"`
	BookingClock  string         `json:"booking_clock" bson:"booking_clock" validate:"required,clock"`
	Status        BookingStatus  `json:"status" bson:"status"`
	AdditionalFee float64        `json:"additional_fee" bson:"additional_fee" validate:"omitempty,min=0"`
	TotalPrice    float64        `json:"total_price" bson:"total_price"`
	Tables        []BookingTable `json:"tables" bson:"tables"`
	Drinks        []BookingDrink `json:"drinks,omitempty" bson:"drinks,omitempty"`
	TicketURL     string         `json:"ticket_url,omitempty" bson:"ticket_url,omitempty"`
	CreatedAt     time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at" bson:"updated_at"`
}

// ScheduledAt combines the booking date and clock into an absolute time.
func (b *Booking) ScheduledAt() (time.Time, error) {
	return CombineDateClock(b.BookingDate, b.BookingClock)
}

type BookingTable struct {
	TableID   string  `json:"table_id" bson:"table_id"`
	BasePrice float64 `json:"base_price" bson:"base_price"`
}

type BookingDrink struct {
	DrinkID   string  `json:"drink_id" bson:"drink_id"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	UnitPrice float64 `json:"unit_price" bson:"unit_price"`
}

// BookingRequest is the customer-facing creation payload. TableIDs must be
// non-empty; Drinks and PaymentDestination are optional.
type BookingRequest struct {
	BarID              string         `json:"bar_id" validate:"required"`
	BookingDate        string         `json:"booking_date" validate:"required,booking_date"`
	BookingClock       string         `json:"booking_clock" validate:"required,clock"`
	TableIDs           []string       `json:"table_ids"`
	Drinks             []DrinkRequest `json:"drinks,omitempty" validate:"omitempty,dive"`
	PaymentDestination string         `json:"payment_destination,omitempty"`
}

type DrinkRequest struct {
	DrinkID  string `json:"drink_id" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

// BookingConfirmation is returned on a successful creation. PaymentURL is set
// only when a drink order required a payment link.
type BookingConfirmation struct {
	Booking    *Booking `json:"booking"`
	PaymentURL string   `json:"payment_url,omitempty"`
}

type StatusUpdate struct {
	Status        BookingStatus `json:"status"`
	AdditionalFee float64       `json:"additional_fee,omitempty"`
}
