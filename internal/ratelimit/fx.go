package ratelimit

import (
	"github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/config"
	scanservice "github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/scan/service"
	redis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// NewRedisClient returns nil when no redis address is configured; the
// limiter and locker degrade to no-ops in that case.
func NewRedisClient(cfg config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

func provideLocker(client *redis.Client) scanservice.Locker {
	locker := NewLocker(client)
	if locker == nil {
		return nil
	}
	return locker
}

var Module = fx.Module("ratelimit",
	fx.Provide(
		NewRedisClient,
		NewTokenBucket,
		NewScanIngestLimiter,
		provideLocker,
	),
)
