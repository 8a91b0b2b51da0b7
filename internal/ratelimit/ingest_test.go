package ratelimit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/config"
)

type stubBucket struct {
	allow bool
	err   error
	keys  []string
}

func (s *stubBucket) Allow(ctx context.Context, key string, rate float64, burst int) (bool, error) {
	s.keys = append(s.keys, key)
	return s.allow, s.err
}

func limiterSettings(enabled bool) *config.SettingsHolder {
	cfg := config.DefaultSettings()
	cfg.RateLimit.Enabled = enabled
	return config.NewStaticSettingsHolder(cfg)
}

func TestScanIngestLimiterDisabledAlwaysPasses(t *testing.T) {
	deny := &stubBucket{allow: false}
	limiter := &ScanIngestLimiter{bucket: deny, settings: limiterSettings(false)}

	allowed, err := limiter.Allow(context.Background(), "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Empty(t, deny.keys, "a disabled limiter never hits the bucket")
}

func TestScanIngestLimiterDeniesWhenBucketEmpty(t *testing.T) {
	deny := &stubBucket{allow: false}
	limiter := &ScanIngestLimiter{bucket: deny, settings: limiterSettings(true)}

	allowed, err := limiter.Allow(context.Background(), "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed)
	require.Len(t, deny.keys, 1)
	assert.Equal(t, "scan:ingest:10.0.0.1", deny.keys[0])
}

func TestScanIngestLimiterNilIsNoop(t *testing.T) {
	var limiter *ScanIngestLimiter

	assert.False(t, limiter.Enabled())
	allowed, err := limiter.Allow(context.Background(), "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestNewScanIngestLimiterRequiresBucket(t *testing.T) {
	assert.Nil(t, NewScanIngestLimiter(nil, limiterSettings(true)))
}
