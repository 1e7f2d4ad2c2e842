package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"taskboard/pkg/response"
)

// RateLimit bounds request rate per authenticated user. Limiters live in
// an expirable LRU so idle users stop costing memory. Must run after Auth;
// unauthenticated requests fall back to the client IP as the key.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiters == nil {
			c.Next()
			return
		}

		key := c.ClientIP()
		if sc, ok := GetScope(c); ok {
			key = sc.UserID
		}

		limiter, ok := m.limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(m.rate, m.burst)
			m.limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "RateLimit: rejected key=%s", key)
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
