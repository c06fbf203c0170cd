package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every tunable of the behavior engine. All values come from
// the environment with sensible defaults, so the zero-setup path works.
type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"dev"`

	// Booking form.
	SubmitDelay   time.Duration `env:"SUBMIT_DELAY" envDefault:"1500ms"`
	StatusTTL     time.Duration `env:"STATUS_TTL" envDefault:"5s"`
	EditDebounce  time.Duration `env:"EDIT_DEBOUNCE" envDefault:"400ms"`
	StrictPhone   bool          `env:"STRICT_PHONE" envDefault:"false"`
	HoneypotField string        `env:"HONEYPOT_FIELD" envDefault:"company"`
	PhoneRegion   string        `env:"PHONE_REGION" envDefault:"US"`

	// Carousel.
	AutoAdvance   time.Duration `env:"CAROUSEL_INTERVAL" envDefault:"4s"`
	Breakpoint    int           `env:"CAROUSEL_BREAKPOINT" envDefault:"768"`
	ItemsWide     int           `env:"CAROUSEL_ITEMS_WIDE" envDefault:"3"`
	ItemsNarrow   int           `env:"CAROUSEL_ITEMS_NARROW" envDefault:"1"`

	// Event plumbing.
	ScrollThrottle time.Duration `env:"SCROLL_THROTTLE" envDefault:"100ms"`
	ResizeDebounce time.Duration `env:"RESIZE_DEBOUNCE" envDefault:"150ms"`
	BusBuffer      int           `env:"EVENT_BUS_BUFFER" envDefault:"64"`

	RevealThreshold int `env:"REVEAL_THRESHOLD" envDefault:"100"`
}

var loadEnvOnce sync.Once

// Load reads .env (when present) and parses the environment into a Config.
func Load() (*Config, error) {
	loadEnvOnce.Do(func() {
		// Missing .env is fine, env vars may be set directly.
		_ = godotenv.Load()
	})

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.AppEnv = strings.ToLower(strings.TrimSpace(cfg.AppEnv))

	if cfg.ItemsWide < 1 || cfg.ItemsNarrow < 1 {
		return nil, fmt.Errorf("carousel page sizes must be positive, got wide=%d narrow=%d", cfg.ItemsWide, cfg.ItemsNarrow)
	}
	if cfg.Breakpoint <= 0 {
		return nil, fmt.Errorf("carousel breakpoint must be positive, got %d", cfg.Breakpoint)
	}
	return cfg, nil
}

// IsProduction reports whether the engine runs with production settings.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "prod" || c.AppEnv == "production"
}
