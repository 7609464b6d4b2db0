package http

import (
	"github.com/gin-gonic/gin"

	"fitness-agent/internal/middleware"
)

// RegisterRoutes maps /reminders/:user_id.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	reminders := rg.Group("/reminders")
	{
		reminders.POST("/:user_id/meal", mw.RateLimit(), h.ScheduleMeal)
		reminders.POST("/:user_id/weekly", mw.RateLimit(), h.ScheduleWeekly)
		reminders.GET("/:user_id", mw.RateLimit(), h.List)
	}
}
