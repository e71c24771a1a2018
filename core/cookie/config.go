package cookie

import (
	"net/http"
	"strings"
)

// Config is the COOKIE_* environment block. Secrets is a comma-separated
// list, newest first.
type Config struct {
	Secrets  string        `env:"COOKIE_SECRETS"`
	Path     string        `env:"COOKIE_PATH" envDefault:"/"`
	Domain   string        `env:"COOKIE_DOMAIN"`
	Secure   bool          `env:"COOKIE_SECURE" envDefault:"false"`
	SameSite http.SameSite `env:"COOKIE_SAME_SITE" envDefault:"2"` // 2 is Lax
	MaxSize  int           `env:"COOKIE_MAX_SIZE" envDefault:"4096"`
}

// NewFromConfig builds a Manager from cfg, then applies opts on top.
func NewFromConfig(cfg Config, opts ...Option) (*Manager, error) {
	all := []Option{WithAttributes(cfg.Path, cfg.Domain, cfg.SameSite)}
	if cfg.Secure {
		all = append(all, WithSecure(true))
	}

	m, err := New(strings.Split(cfg.Secrets, ","), append(all, opts...)...)
	if err != nil {
		return nil, err
	}
	if cfg.MaxSize > 0 {
		m.maxSize = cfg.MaxSize
	}
	return m, nil
}
