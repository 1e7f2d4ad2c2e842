package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"taskboard/internal/model"
	"taskboard/pkg/response"
)

// Auth verifies the Authorization bearer token as an HS256 session JWT and
// stores the caller's scope in the request context. The raw token rides
// along in the scope so downstream calls can act on the user's behalf.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		sc, err := m.parseToken(raw)
		if err != nil {
			m.l.Warnf(c.Request.Context(), "Auth: token rejected: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, sc)
		c.Next()
	}
}

func (m Middleware) parseToken(raw string) (model.Scope, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.jwtSecret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return model.Scope{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.Scope{}, fmt.Errorf("unexpected claims type %T", token.Claims)
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return model.Scope{}, fmt.Errorf("token has no subject")
	}

	email, _ := claims["email"].(string)

	return model.Scope{
		UserID: sub,
		Email:  email,
		Token:  raw,
	}, nil
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// SetScope stores a scope the way Auth does. Lets tests drive handlers
// without minting real tokens.
func SetScope(c *gin.Context, sc model.Scope) {
	c.Set(scopeKey, sc)
}

// GetScope extracts the authenticated scope set by Auth. The bool is false
// on routes that skipped the middleware.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
