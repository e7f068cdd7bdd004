package middleware

import (
	"luna-assistant/pkg/log"
)

// Middleware bundles the cross-cutting gin handlers.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, requestsPerMin int) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(requestsPerMin),
	}
}
