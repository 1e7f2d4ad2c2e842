package http

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/middleware"
)

// RegisterRoutes maps the auth endpoints. Signup and login are public,
// logout needs the session being revoked.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	auth := rg.Group("/auth")
	{
		auth.POST("/signup", h.SignUp)
		auth.POST("/login", h.Login)
		auth.POST("/logout", mw.Auth(), h.Logout)
	}
}
