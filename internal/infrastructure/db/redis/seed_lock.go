package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/mernapp/mern-api/internal/core/domain"
)

const (
	seedLockKey = "lock:seed"
	seedLockTTL = 30 * time.Second
)

// releaseScript deletes the lock only if it still holds our token, so a run
// that outlived the TTL cannot release a lock taken by a later run.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// SeedLock serializes seed runs across API instances sharing one Redis.
type SeedLock struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSeedLock creates a SeedLock wrapping the given Redis client.
func NewSeedLock(client *redis.Client) *SeedLock {
	return &SeedLock{client: client, ttl: seedLockTTL}
}

// Lock acquires the seed lock or returns domain.ErrSeedInProgress when it is
// held elsewhere.
func (l *SeedLock) Lock(ctx context.Context) (func(context.Context) error, error) {
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, seedLockKey, token, l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("seed lock acquire: %w", err)
	}
	if !ok {
		return nil, domain.ErrSeedInProgress
	}

	return func(ctx context.Context) error {
		if err := releaseScript.Run(ctx, l.client, []string{seedLockKey}, token).Err(); err != nil {
			return fmt.Errorf("seed lock release: %w", err)
		}
		return nil
	}, nil
}
