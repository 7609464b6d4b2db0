package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "conversation.http.processChatReq: %v", err)
		return req, errWrongBody
	}
	return req, nil
}
