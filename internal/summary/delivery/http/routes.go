package http

import (
	"github.com/gin-gonic/gin"

	"fitness-agent/internal/middleware"
)

// RegisterRoutes maps /summary/:user_id.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/summary/:user_id", mw.RateLimit(), h.Get)
}
