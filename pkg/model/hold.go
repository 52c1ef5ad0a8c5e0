package model

import "time"

// TableHold is an advisory, short-lived reservation of a table for one slot.
// It lives in the hold store only and is never persisted.
type TableHold struct {
	TableID   string    `json:"table_id"`
	AccountID string    `json:"account_id"`
	Date      string    `json:"date"`
	Clock     string    `json:"clock"`
	HeldUntil time.Time `json:"held_until"`
}

// Expired reports whether the hold has lapsed at the given instant.
func (h *TableHold) Expired(now time.Time) bool {
	return !now.Before(h.HeldUntil)
}

type HoldRequest struct {
	BarID   string `json:"bar_id" validate:"required"`
	TableID string `json:"table_id" validate:"required"`
	Date    string `json:"date" validate:"required,booking_date"`
	Clock   string `json:"clock" validate:"required,clock"`
}

type HoldResult struct {
	TableID    string    `json:"table_id"`
	AccountID  string    `json:"account_id"`
	IsHeld     bool      `json:"is_held"`
	HoldExpiry time.Time `json:"hold_expiry"`
	SlotToken  string    `json:"slot_token,omitempty"`
}

// TableSlotStatus is one row of a HoldTableList response.
type TableSlotStatus struct {
	TableID   string    `json:"table_id"`
	Label     string    `json:"label"`
	TableType string    `json:"table_type"`
	Capacity  int       `json:"capacity"`
	BasePrice float64   `json:"base_price"`
	IsHeld    bool      `json:"is_held"`
	HeldUntil time.Time `json:"held_until,omitempty"`
	SlotToken string    `json:"slot_token,omitempty"`
}
