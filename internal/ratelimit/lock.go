package ratelimit

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	redis "github.com/redis/go-redis/v9"
)

// releaseIfOwnedScript deletes the lock only while the stored token
// still matches: a lock that expired and was re-acquired by another
// holder is never released by the original one.
const releaseIfOwnedScript = `
if redis.call("get", KEYS[1]) == ARGV[1] then
  return redis.call("del", KEYS[1])
end
return 0
`

// Locker is a single-winner SETNX lock with per-acquisition owner
// tokens. Bulk invoice renames use it to serialize concurrent renames
// of the same source invoice across instances.
type Locker struct {
	client  *redis.Client
	release *redis.Script
}

func NewLocker(client *redis.Client) *Locker {
	if client == nil {
		return nil
	}
	return &Locker{
		client:  client,
		release: redis.NewScript(releaseIfOwnedScript),
	}
}

// TryLock attempts to take the lock without blocking. On success it
// returns the owner token that Release later requires; ok reports
// whether this caller won.
func (l *Locker) TryLock(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	if l == nil || l.client == nil {
		return "", false, errors.New("locker has no redis client")
	}
	if key == "" || ttl <= 0 {
		return "", false, errors.New("locker needs a key and a positive ttl")
	}

	token := uuid.NewString()
	acquired, err := l.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil || !acquired {
		return "", false, err
	}
	return token, true, nil
}

// Release frees the lock held under token. Releasing with a stale or
// empty token is a no-op.
func (l *Locker) Release(ctx context.Context, key, token string) error {
	if l == nil || l.client == nil {
		return nil
	}
	if key == "" || token == "" {
		return nil
	}
	return l.release.Run(ctx, l.client, []string{key}, token).Err()
}
