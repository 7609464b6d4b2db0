package mcp

import (
	"github.com/gin-gonic/gin"

	"fitness-agent/internal/middleware"
)

// RegisterRoutes maps the MCP tool endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tools := rg.Group("/mcp/tools")
	{
		tools.GET("", h.ListTools)
		tools.POST("/call", mw.RateLimit(), h.CallTool)
	}
}
