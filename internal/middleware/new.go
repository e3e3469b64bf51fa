package middleware

import (
	"shareit/pkg/log"
)

// Config tunes the optional middlewares. Zero RequestsPerMin disables rate limiting.
type Config struct {
	RequestsPerMin int
	Burst          int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin, cfg.Burst)
	}
	return mw
}
