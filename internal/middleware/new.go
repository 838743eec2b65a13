package middleware

import (
	"healthsmart-chatbot/internal/model"
	"healthsmart-chatbot/pkg/log"
)

// Config configures the shared middlewares.
type Config struct {
	Environment      string
	RateLimitEnabled bool
	RateLimitPerMin  int
}

type Middleware struct {
	l           log.Logger
	environment string
	limiter     *rateLimiter
}

// New creates the middleware set. The rate limiter is nil when disabled.
func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:           l,
		environment: cfg.Environment,
	}
	if cfg.RateLimitEnabled && cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}

func (mw Middleware) isProduction() bool {
	return mw.environment == string(model.EnvironmentProduction)
}
