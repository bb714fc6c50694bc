package middleware

import (
	"webhook-relay/pkg/log"
)

// Config holds the inbound protection settings.
type Config struct {
	// Password enables HTTP basic auth when non-empty. Any username is accepted.
	Password        string
	RateLimitPerMin int
}

type Middleware struct {
	l        log.Logger
	password string
	limiter  *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:        l,
		password: cfg.Password,
	}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
