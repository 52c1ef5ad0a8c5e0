package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	holdserrors "barkeep/internal/holds/errors"
	"barkeep/pkg/model"
)

// newTestStore builds a store without the background sweep so tests
// can swap the clock without racing it.
func newTestStore() *MemoryHoldStore {
	return &MemoryHoldStore{
		holds:  make(map[string]*model.TableHold),
		now:    time.Now,
		stopCh: make(chan struct{}),
	}
}

var testSlot = Slot{
	BarID:   "bar-1",
	TableID: "table-1",
	Date:    "2026-09-11",
	Clock:   "20:00",
}

func TestMemoryHoldStore_AcquireAndGet(t *testing.T) {
	s := newTestStore()

	hold, err := s.Acquire(context.Background(), testSlot, "acct-1", 5*time.Minute)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if hold.AccountID != "acct-1" {
		t.Errorf("expected holder acct-1, got %s", hold.AccountID)
	}

	got, err := s.Get(context.Background(), testSlot)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got == nil {
		t.Fatal("expected hold to be present")
	}
	if got.AccountID != "acct-1" {
		t.Errorf("expected holder acct-1, got %s", got.AccountID)
	}
}

func TestMemoryHoldStore_ConflictForOtherAccount(t *testing.T) {
	s := newTestStore()

	if _, err := s.Acquire(context.Background(), testSlot, "acct-1", 5*time.Minute); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	_, err := s.Acquire(context.Background(), testSlot, "acct-2", 5*time.Minute)
	if !errors.Is(err, holdserrors.ErrSlotHeld) {
		t.Errorf("expected ErrSlotHeld, got %v", err)
	}

	// The original hold is untouched.
	got, err := s.Get(context.Background(), testSlot)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got == nil || got.AccountID != "acct-1" {
		t.Errorf("expected hold to remain with acct-1, got %+v", got)
	}
}

func TestMemoryHoldStore_SameAccountRefreshExtendsExpiry(t *testing.T) {
	s := newTestStore()

	base := time.Date(2026, 9, 11, 18, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	first, err := s.Acquire(context.Background(), testSlot, "acct-1", 5*time.Minute)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	s.now = func() time.Time { return base.Add(3 * time.Minute) }

	second, err := s.Acquire(context.Background(), testSlot, "acct-1", 5*time.Minute)
	if err != nil {
		t.Fatalf("expected refresh to succeed, got %v", err)
	}
	if !second.HeldUntil.After(first.HeldUntil) {
		t.Errorf("expected refreshed expiry %v to be after %v", second.HeldUntil, first.HeldUntil)
	}
}

func TestMemoryHoldStore_ExpiredHoldIsFree(t *testing.T) {
	s := newTestStore()

	base := time.Date(2026, 9, 11, 18, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	if _, err := s.Acquire(context.Background(), testSlot, "acct-1", 5*time.Minute); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	s.now = func() time.Time { return base.Add(6 * time.Minute) }

	got, err := s.Get(context.Background(), testSlot)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != nil {
		t.Errorf("expected lapsed hold to read as free, got %+v", got)
	}

	// A different account can take the slot once the hold lapses.
	hold, err := s.Acquire(context.Background(), testSlot, "acct-2", 5*time.Minute)
	if err != nil {
		t.Fatalf("expected acquire after expiry to succeed, got %v", err)
	}
	if hold.AccountID != "acct-2" {
		t.Errorf("expected holder acct-2, got %s", hold.AccountID)
	}
}

func TestMemoryHoldStore_ReleaseOnlyByOwner(t *testing.T) {
	s := newTestStore()

	if _, err := s.Acquire(context.Background(), testSlot, "acct-1", 5*time.Minute); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := s.Release(context.Background(), testSlot, "acct-2"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	got, _ := s.Get(context.Background(), testSlot)
	if got == nil {
		t.Fatal("expected non-owner release to be a no-op")
	}

	if err := s.Release(context.Background(), testSlot, "acct-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	got, _ = s.Get(context.Background(), testSlot)
	if got != nil {
		t.Errorf("expected slot to be free after owner release, got %+v", got)
	}
}

func TestMemoryHoldStore_ConcurrentAcquireSingleWinner(t *testing.T) {
	s := newTestStore()

	const workers = 20
	var wg sync.WaitGroup
	var mu sync.Mutex
	winners := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			accountID := fmt.Sprintf("acct-%d", i)
			if _, err := s.Acquire(context.Background(), testSlot, accountID, 5*time.Minute); err == nil {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	if winners != 1 {
		t.Errorf("expected exactly one winner, got %d", winners)
	}
}
