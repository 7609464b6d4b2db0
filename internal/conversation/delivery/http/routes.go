package http

import (
	"github.com/gin-gonic/gin"

	"fitness-agent/internal/middleware"
)

// RegisterRoutes maps /chat and its websocket.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	chat := rg.Group("/chat")
	{
		chat.POST("", mw.RateLimit(), h.Chat)
		chat.GET("/ws", h.Stream(mw.CheckOrigin))
	}
}
