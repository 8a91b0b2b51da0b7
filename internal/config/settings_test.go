package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	cfg := DefaultSettings()

	assert.True(t, cfg.Filters.SetMatchAny)
	assert.Equal(t, 5, cfg.Invoice.PageSize)
	assert.False(t, cfg.RateLimit.Enabled)
	require.NoError(t, validateSettings(cfg))
}

func TestValidateSettings(t *testing.T) {
	cfg := DefaultSettings()
	cfg.Invoice.PageSize = 0
	assert.Error(t, validateSettings(cfg))

	cfg = DefaultSettings()
	cfg.RateLimit.Enabled = true
	cfg.RateLimit.IngestRate = 0
	assert.Error(t, validateSettings(cfg))
}

func TestSettingsHolderStore(t *testing.T) {
	holder := NewStaticSettingsHolder(DefaultSettings())
	assert.True(t, holder.Current().Filters.SetMatchAny)

	updated := DefaultSettings()
	updated.Filters.SetMatchAny = false
	holder.Store(updated)
	assert.False(t, holder.Current().Filters.SetMatchAny)
}
