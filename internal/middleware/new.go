package middleware

import (
	"fitness-agent/config"
	"fitness-agent/pkg/log"
)

type Middleware struct {
	l              log.Logger
	limiter        *rateLimiter
	allowedOrigins []string
}

func New(l log.Logger, rl config.RateLimitConfig, cors config.CORSConfig) Middleware {
	return Middleware{
		l:              l,
		limiter:        newRateLimiter(rl.RequestsPerMin),
		allowedOrigins: cors.AllowedOrigins,
	}
}
