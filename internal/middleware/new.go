package middleware

import (
	"time"

	"github.com/rs/cors"

	"calendar-assistant/pkg/log"
)

// Config carries the middleware settings from config.Config.
type Config struct {
	CookieName   string
	SessionTTL   time.Duration
	SecureCookie bool

	ExtractPerMin int
	Burst         int

	AllowedOrigins []string
}

type Middleware struct {
	l       log.Logger
	cfg     Config
	limiter *rateLimiter
	cors    *cors.Cors
}

func New(l log.Logger, cfg Config) Middleware {
	if cfg.CookieName == "" {
		cfg.CookieName = DefaultCookieName
	}
	return Middleware{
		l:       l,
		cfg:     cfg,
		limiter: newRateLimiter(cfg.ExtractPerMin, cfg.Burst),
		cors:    newCORS(cfg.AllowedOrigins),
	}
}
