// Package store keeps advisory table holds. A hold marks a (bar,
// table, date, clock) slot as claimed by one account for a short TTL
// while they complete checkout. Holds are advisory only and never
// persisted with bookings; a lapsed hold simply stops existing.
package store

import (
	"context"
	"time"

	"barkeep/pkg/model"
)

// Slot identifies one holdable table slot.
type Slot struct {
	BarID   string
	TableID string
	Date    string
	Clock   string
}

func (s Slot) Key() string {
	return s.BarID + ":" + s.TableID + ":" + s.Date + ":" + s.Clock
}

// HoldStore is the single-holder invariant's home. Implementations
// must guarantee at most one live hold per slot under concurrent
// Acquire calls.
type HoldStore interface {
	// Acquire places or refreshes a hold. When accountID already
	// holds the slot the expiry is extended; when another account
	// holds it, ErrSlotHeld is returned. Expired holds are treated
	// as absent.
	Acquire(ctx context.Context, slot Slot, accountID string, ttl time.Duration) (*model.TableHold, error)

	// Get returns the live hold on a slot, or nil when the slot is
	// free or the hold has lapsed.
	Get(ctx context.Context, slot Slot) (*model.TableHold, error)

	// Release drops accountID's hold on the slot. Releasing a slot
	// held by someone else, or not held at all, is a no-op.
	Release(ctx context.Context, slot Slot, accountID string) error
}
