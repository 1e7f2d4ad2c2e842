package http

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Every route
// requires auth; submission additionally goes through the rate limiter.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", mw.Auth(), mw.RateLimit(), h.Submit)
		tasks.GET("", mw.Auth(), h.List)
		tasks.GET("/stats", mw.Auth(), h.Stats)
		tasks.PATCH("/:id/status", mw.Auth(), h.UpdateStatus)
		tasks.PUT("/:id/tags", mw.Auth(), h.UpdateTags)
		tasks.PUT("/:id/schedule", mw.Auth(), h.UpdateSchedule)
	}
}
