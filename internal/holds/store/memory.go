package store

import (
	"context"
	"sync"
	"time"

	holdserrors "barkeep/internal/holds/errors"
	"barkeep/pkg/model"
)

// MemoryHoldStore keeps holds in a mutex-guarded map. Expired entries
// are dropped lazily on access and by a periodic sweep so the map does
// not grow unbounded between reads.
type MemoryHoldStore struct {
	mu     sync.Mutex
	holds  map[string]*model.TableHold
	now    func() time.Time
	stopCh chan struct{}
}

func NewMemoryHoldStore() *MemoryHoldStore {
	s := &MemoryHoldStore{
		holds:  make(map[string]*model.TableHold),
		now:    time.Now,
		stopCh: make(chan struct{}),
	}

	go s.sweep()

	return s
}

func (s *MemoryHoldStore) sweep() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := s.now()
			s.mu.Lock()
			for key, hold := range s.holds {
				if hold.Expired(now) {
					delete(s.holds, key)
				}
			}
			s.mu.Unlock()
		case <-s.stopCh:
			return
		}
	}
}

func (s *MemoryHoldStore) Stop() {
	close(s.stopCh)
}

func (s *MemoryHoldStore) Acquire(ctx context.Context, slot Slot, accountID string, ttl time.Duration) (*model.TableHold, error) {
	now := s.now()
	key := slot.Key()

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.holds[key]
	if ok && !existing.Expired(now) && existing.AccountID != accountID {
		return nil, holdserrors.ErrSlotHeld
	}

	hold := &model.TableHold{
		TableID:   slot.TableID,
		AccountID: accountID,
		Date:      slot.Date,
		Clock:     slot.Clock,
		HeldUntil: now.Add(ttl),
	}
	s.holds[key] = hold

	copied := *hold
	return &copied, nil
}

func (s *MemoryHoldStore) Get(ctx context.Context, slot Slot) (*model.TableHold, error) {
	now := s.now()
	key := slot.Key()

	s.mu.Lock()
	defer s.mu.Unlock()

	hold, ok := s.holds[key]
	if !ok {
		return nil, nil
	}
	if hold.Expired(now) {
		delete(s.holds, key)
		return nil, nil
	}

	copied := *hold
	return &copied, nil
}

func (s *MemoryHoldStore) Release(ctx context.Context, slot Slot, accountID string) error {
	key := slot.Key()

	s.mu.Lock()
	defer s.mu.Unlock()

	hold, ok := s.holds[key]
	if !ok || hold.AccountID != accountID {
		return nil
	}

	delete(s.holds, key)
	return nil
}
