package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Settings are the runtime-tunable knobs loaded from warehouse.yml.
// Unlike Config they can change while the process is running.
type Settings struct {
	Filters   FilterSettings    `mapstructure:"filters"`
	Invoice   InvoiceSettings   `mapstructure:"invoice"`
	RateLimit RateLimitSettings `mapstructure:"rateLimit"`
}

type FilterSettings struct {
	// SetMatchAny preserves the historical behavior of combining the
	// invoice-number set and the barcode-sn set with OR while every
	// other filter combines with AND. Set to false for strict AND.
	SetMatchAny bool `mapstructure:"setMatchAny"`
}

type InvoiceSettings struct {
	// PageSize is the fixed page size of the grouped invoice view,
	// independent from the row-level per_page.
	PageSize int `mapstructure:"pageSize"`
}

type RateLimitSettings struct {
	Enabled        bool    `mapstructure:"enabled"`
	IngestRate     float64 `mapstructure:"ingestRate"`
	IngestBurst    int     `mapstructure:"ingestBurst"`
	LockTTLSeconds int     `mapstructure:"lockTTLSeconds"`
}

func DefaultSettings() Settings {
	return Settings{
		Filters:   FilterSettings{SetMatchAny: true},
		Invoice:   InvoiceSettings{PageSize: 5},
		RateLimit: RateLimitSettings{Enabled: false, IngestRate: 20, IngestBurst: 40, LockTTLSeconds: 30},
	}
}

// SettingsHolder keeps the current Settings behind an atomic.Value so
// hot reloads never race readers.
type SettingsHolder struct {
	current atomic.Value // holds Settings
}

func NewSettingsHolder() (*SettingsHolder, error) {
	v := viper.New()

	v.SetConfigName("warehouse")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/warehouse")
	v.AddConfigPath(".")

	v.SetEnvPrefix("WAREHOUSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultSettings()
	v.SetDefault("filters.setMatchAny", defaults.Filters.SetMatchAny)
	v.SetDefault("invoice.pageSize", defaults.Invoice.PageSize)
	v.SetDefault("rateLimit.enabled", defaults.RateLimit.Enabled)
	v.SetDefault("rateLimit.ingestRate", defaults.RateLimit.IngestRate)
	v.SetDefault("rateLimit.ingestBurst", defaults.RateLimit.IngestBurst)
	v.SetDefault("rateLimit.lockTTLSeconds", defaults.RateLimit.LockTTLSeconds)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Settings
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := validateSettings(cfg); err != nil {
		return nil, err
	}

	holder := &SettingsHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated Settings
		if err := v.Unmarshal(&updated); err != nil {
			log.Printf("[settings] reload failed: %v", err)
			return
		}
		if err := validateSettings(updated); err != nil {
			log.Printf("[settings] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
	})

	return holder, nil
}

// NewStaticSettingsHolder wraps fixed Settings, mainly for tests.
func NewStaticSettingsHolder(cfg Settings) *SettingsHolder {
	holder := &SettingsHolder{}
	holder.current.Store(cfg)
	return holder
}

func (h *SettingsHolder) Current() Settings {
	return h.current.Load().(Settings)
}

// Store swaps in new Settings atomically. Readers in flight keep the
// snapshot they already loaded.
func (h *SettingsHolder) Store(cfg Settings) {
	h.current.Store(cfg)
}

func validateSettings(cfg Settings) error {
	if cfg.Invoice.PageSize <= 0 {
		return errors.New("invoice.pageSize must be positive")
	}
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.IngestRate <= 0 || cfg.RateLimit.IngestBurst <= 0 {
			return errors.New("rateLimit ingest rate and burst must be positive")
		}
		if cfg.RateLimit.LockTTLSeconds <= 0 {
			return errors.New("rateLimit.lockTTLSeconds must be positive")
		}
	}
	return nil
}
