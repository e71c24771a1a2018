package redis

import "time"

// Config holds Redis connection settings.
type Config struct {
	ConnectionURL    string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	RetryAttempts    int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval    time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout   time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
	SessionKeyPrefix string        `env:"REDIS_SESSION_PREFIX" envDefault:"session:"`
}
