package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "fitness-agent/pkg/errors"
	"fitness-agent/pkg/response"
)

// ScheduleMeal godoc
// @Summary     Schedule a meal log reminder
// @Description Books a 15 minute calendar event with a popup 10 minutes before. Time is RFC3339 or HH:MM on the relative day.
// @Tags        Reminders
// @Accept      json
// @Produce     json
// @Param       user_id path string  true "User ID"
// @Param       body    body mealReq true "Meal reminder"
// @Success     200 {object} reminderResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Calendar is unavailable"
// @Router      /api/v1/reminders/{user_id}/meal [POST]
func (h *handler) ScheduleMeal(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMealReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	rem, err := h.uc.ScheduleMeal(ctx, req.toInput())
	if err != nil {
		h.reportError(c, err)
		return
	}

	response.OK(c, h.newReminderResp(rem))
}

// ScheduleWeekly godoc
// @Summary     Schedule the weekly summary reminder
// @Description Books the weekly summary at 09:00 on the next given weekday (0 = Monday).
// @Tags        Reminders
// @Accept      json
// @Produce     json
// @Param       user_id path string    true "User ID"
// @Param       body    body weeklyReq true "Weekly reminder"
// @Success     200 {object} reminderResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Calendar is unavailable"
// @Router      /api/v1/reminders/{user_id}/weekly [POST]
func (h *handler) ScheduleWeekly(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processWeeklyReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	rem, err := h.uc.ScheduleWeekly(ctx, req.toInput())
	if err != nil {
		h.reportError(c, err)
		return
	}

	response.OK(c, h.newReminderResp(rem))
}

// List godoc
// @Summary     List a user's reminders
// @Tags        Reminders
// @Produce     json
// @Param       user_id path string true "User ID"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/reminders/{user_id} [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	userID := c.Param("user_id")
	if userID == "" {
		response.Error(c, errUserIDMissing, nil)
		return
	}

	rems, err := h.uc.List(ctx, userID)
	if err != nil {
		h.reportError(c, err)
		return
	}

	response.OK(c, h.newListResp(rems))
}

func (h *handler) reportError(c *gin.Context, err error) {
	mapped := h.mapError(err)
	if _, ok := mapped.(*pkgErrors.HTTPError); ok {
		response.Error(c, mapped, nil)
		return
	}
	h.l.Errorf(c.Request.Context(), "reminder.http: %v", err)
	response.InternalError(c, err)
}
