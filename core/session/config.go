package session

import (
	"time"
)

// Config holds session manager configuration.
type Config struct {
	// Session time-to-live (idle timeout)
	TTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	// Min time between activity updates (0 = touch on every request)
	TouchInterval time.Duration `env:"SESSION_TOUCH_INTERVAL" envDefault:"5m"`
}

// defaultConfig returns default configuration.
func defaultConfig() Config {
	return Config{
		TTL:           24 * time.Hour,
		TouchInterval: 5 * time.Minute,
	}
}

// Option is a functional option for configuring the session manager.
type Option func(*Config)

// WithConfig replaces the whole configuration, typically one loaded from the environment.
// A non-positive TTL keeps the default.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		if cfg.TTL > 0 {
			c.TTL = cfg.TTL
		}
		if cfg.TouchInterval >= 0 {
			c.TouchInterval = cfg.TouchInterval
		}
	}
}

// WithTTL sets the session time-to-live.
func WithTTL(ttl time.Duration) Option {
	return func(c *Config) {
		c.TTL = ttl
	}
}

// WithTouchInterval sets the minimum time between session activity updates.
// This prevents excessive storage writes.
// Set to 0 to extend the session on every request.
func WithTouchInterval(interval time.Duration) Option {
	return func(c *Config) {
		c.TouchInterval = interval
	}
}
