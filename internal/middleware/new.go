package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"taskboard/pkg/log"
)

const (
	// scopeKey is the gin context key the Auth middleware stores the
	// caller's scope under.
	scopeKey = "taskboard-scope"

	// requestIDHeader carries the per-request correlation id.
	requestIDHeader = "X-Request-ID"

	maxTrackedUsers = 1000
	limiterTTL      = 5 * time.Minute
)

type Middleware struct {
	l         log.Logger
	jwtSecret []byte

	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// New creates the middleware set. requestsPerMin bounds submissions per
// user; zero or negative disables rate limiting.
func New(l log.Logger, jwtSecret string, requestsPerMin int) Middleware {
	m := Middleware{
		l:         l,
		jwtSecret: []byte(jwtSecret),
	}

	if requestsPerMin > 0 {
		m.limiters = expirable.NewLRU[string, *rate.Limiter](maxTrackedUsers, nil, limiterTTL)
		m.rate = rate.Limit(float64(requestsPerMin) / 60.0)
		m.burst = requestsPerMin/10 + 1
	}

	return m
}
