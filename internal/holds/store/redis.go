package store

import (
	"context"
	"fmt"
	"time"

	holdserrors "barkeep/internal/holds/errors"
	"barkeep/pkg/model"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "hold:"

// acquireScript sets the hold when the slot is free or already ours,
// refreshing the TTL. Returns 1 on success, 0 when someone else holds
// the slot. Redis expiry gives lazy cleanup for free.
var acquireScript = redis.NewScript(`
local owner = redis.call("GET", KEYS[1])
if owner == false or owner == ARGV[1] then
    redis.call("SET", KEYS[1], ARGV[1], "PX", ARGV[2])
    return 1
end
return 0
`)

// releaseScript deletes the hold only when we own it.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
    return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisHoldStore backs holds with Redis so multiple holds instances
// share one view of who holds what.
type RedisHoldStore struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisHoldStore(client *redis.Client) *RedisHoldStore {
	return &RedisHoldStore{
		client: client,
		now:    time.Now,
	}
}

func (s *RedisHoldStore) Acquire(ctx context.Context, slot Slot, accountID string, ttl time.Duration) (*model.TableHold, error) {
	key := keyPrefix + slot.Key()

	ok, err := acquireScript.Run(ctx, s.client, []string{key}, accountID, ttl.Milliseconds()).Int()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire hold: %w", err)
	}
	if ok == 0 {
		return nil, holdserrors.ErrSlotHeld
	}

	return &model.TableHold{
		TableID:   slot.TableID,
		AccountID: accountID,
		Date:      slot.Date,
		Clock:     slot.Clock,
		HeldUntil: s.now().Add(ttl),
	}, nil
}

func (s *RedisHoldStore) Get(ctx context.Context, slot Slot) (*model.TableHold, error) {
	key := keyPrefix + slot.Key()

	pipe := s.client.Pipeline()
	getCmd := pipe.Get(ctx, key)
	ttlCmd := pipe.PTTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read hold: %w", err)
	}

	owner := getCmd.Val()
	remaining := ttlCmd.Val()
	if owner == "" || remaining <= 0 {
		return nil, nil
	}

	return &model.TableHold{
		TableID:   slot.TableID,
		AccountID: owner,
		Date:      slot.Date,
		Clock:     slot.Clock,
		HeldUntil: s.now().Add(remaining),
	}, nil
}

func (s *RedisHoldStore) Release(ctx context.Context, slot Slot, accountID string) error {
	key := keyPrefix + slot.Key()

	if err := releaseScript.Run(ctx, s.client, []string{key}, accountID).Err(); err != nil && err != redis.Nil {
		return fmt.Errorf("failed to release hold: %w", err)
	}
	return nil
}
