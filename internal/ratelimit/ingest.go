package ratelimit

import (
	"context"
	"fmt"
	"strings"

	"github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/config"
)

const keyScanIngest = "scan:ingest:%s"

// bucket is what the limiter needs from TokenBucket; an interface so
// tests can drive the denial path without redis.
type bucket interface {
	Allow(ctx context.Context, key string, rate float64, burst int) (bool, error)
}

// ScanIngestLimiter throttles batch ingestion per operator. Disabled
// unless both redis and the rateLimit settings are configured.
type ScanIngestLimiter struct {
	bucket   bucket
	settings *config.SettingsHolder
}

func NewScanIngestLimiter(bucket *TokenBucket, settings *config.SettingsHolder) *ScanIngestLimiter {
	if bucket == nil {
		return nil
	}
	return &ScanIngestLimiter{bucket: bucket, settings: settings}
}

func (l *ScanIngestLimiter) Enabled() bool {
	return l != nil && l.bucket != nil && l.settings.Current().RateLimit.Enabled
}

// Allow consumes one token from the caller's bucket. Callers that are
// not throttled always pass.
func (l *ScanIngestLimiter) Allow(ctx context.Context, caller string) (bool, error) {
	if !l.Enabled() {
		return true, nil
	}
	limits := l.settings.Current().RateLimit
	key := fmt.Sprintf(keyScanIngest, strings.TrimSpace(caller))
	return l.bucket.Allow(ctx, key, limits.IngestRate, limits.IngestBurst)
}
