package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processMealReq(c *gin.Context) (mealReq, error) {
	var req mealReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "reminder.http.processMealReq: %v", err)
		return req, errWrongBody
	}
	req.UserID = c.Param("user_id")
	if req.UserID == "" {
		return req, errUserIDMissing
	}
	return req, nil
}

func (h *handler) processWeeklyReq(c *gin.Context) (weeklyReq, error) {
	var req weeklyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "reminder.http.processWeeklyReq: %v", err)
		return req, errWrongBody
	}
	req.UserID = c.Param("user_id")
	if req.UserID == "" {
		return req, errUserIDMissing
	}
	return req, nil
}
