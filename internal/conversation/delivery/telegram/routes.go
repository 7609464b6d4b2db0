package telegram

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the Telegram webhook. Telegram retries on its own, so
// the route is not rate limited.
func RegisterRoutes(r gin.IRouter, h Handler) {
	r.POST("/webhook/telegram", h.HandleWebhook)
}
