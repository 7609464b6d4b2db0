package http

import (
	"github.com/gin-gonic/gin"
)

// processSetReq binds the goal body and the :user_id path parameter.
func (h *handler) processSetReq(c *gin.Context) (setReq, error) {
	var req setReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "goal.http.processSetReq: %v", err)
		return req, errWrongBody
	}
	req.UserID = c.Param("user_id")
	if req.UserID == "" {
		return req, errUserIDMissing
	}
	return req, req.validate()
}
