package http

import (
	"github.com/gin-gonic/gin"

	"fitness-agent/internal/middleware"
)

// RegisterRoutes maps /goals/:user_id.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	goals := rg.Group("/goals")
	{
		goals.POST("/:user_id", mw.RateLimit(), h.Set)
		goals.GET("/:user_id", mw.RateLimit(), h.Get)
	}
}
