package cms

import (
	"time"

	"github.com/dmitrymomot/doccms/core/cookie"
	"github.com/dmitrymomot/doccms/core/server"
	"github.com/dmitrymomot/doccms/core/session"
	"github.com/dmitrymomot/doccms/core/sessiontransport"
	"github.com/dmitrymomot/doccms/integration/database/redis"
	"github.com/dmitrymomot/doccms/integration/storage/s3"
)

// Environment names.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// Storage drivers and session stores.
const (
	StorageLocal = "local"
	StorageS3    = "s3"

	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

type Config struct {
	Cookie        cookie.Config
	Session       session.Config
	SessionCookie sessiontransport.CookieConfig
	Server        server.Config
	S3            s3.Config
	Redis         redis.Config

	AppName  string `env:"APP_NAME" envDefault:"doccms"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	DataDir       string `env:"DATA_DIR" envDefault:"data"`
	TestDataDir   string `env:"TEST_DATA_DIR" envDefault:"testdata/data"`
	UsersFile     string `env:"USERS_FILE" envDefault:"users.yml"`
	TestUsersFile string `env:"TEST_USERS_FILE" envDefault:"testdata/users.yml"`

	StorageDriver          string        `env:"STORAGE_DRIVER" envDefault:"local"`
	SessionStore           string        `env:"SESSION_STORE" envDefault:"memory"`
	SessionCleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"10m"`

	DocumentPatterns   []string `env:"DOCUMENT_PATTERNS" envSeparator:"," envDefault:"*"`
	MarkdownUnsafeHTML bool     `env:"MARKDOWN_UNSAFE_HTML" envDefault:"false"`
	MaxBodySize        int64    `env:"MAX_BODY_SIZE" envDefault:"4194304"`

	// Sign-in attempts allowed per client IP per window. Zero disables the limit.
	SignInRateLimit  int           `env:"SIGNIN_RATE_LIMIT" envDefault:"10"`
	SignInRateWindow time.Duration `env:"SIGNIN_RATE_WINDOW" envDefault:"1m"`
}

// IsTest reports whether the app runs against the test data root and users file.
func (c Config) IsTest() bool { return c.Env == EnvTest }

func (c Config) IsProduction() bool { return c.Env == EnvProduction }

// DocumentRoot returns the directory the local document store works in.
func (c Config) DocumentRoot() string {
	if c.IsTest() {
		return c.TestDataDir
	}
	return c.DataDir
}

// UsersPath returns the credentials file for the current environment.
func (c Config) UsersPath() string {
	if c.IsTest() {
		return c.TestUsersFile
	}
	return c.UsersFile
}
