package http

import (
	"github.com/gin-gonic/gin"

	"fitness-agent/internal/conversation"
	pkgErrors "fitness-agent/pkg/errors"
	"fitness-agent/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Routes the message to food logging, goals, summaries or a clarification question and returns the reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Request failed, data carries the apology reply"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	res, err := h.uc.HandleMessage(ctx, req.UserID, req.Message)
	if err != nil {
		h.reportError(c, err, res)
		return
	}

	if res.Status == conversation.StatusRequestFailed {
		c.JSON(errRequestFailed.StatusCode, response.Resp{
			ErrorCode: errRequestFailed.Code,
			Message:   errRequestFailed.Message,
			Data:      h.newChatResp(res),
		})
		return
	}

	response.OK(c, h.newChatResp(res))
}

// reportError answers a rejected message. The reply that comes with a
// validation error is kept in data.
func (h *handler) reportError(c *gin.Context, err error, res conversation.Result) {
	mapped := h.mapError(err)
	if _, ok := mapped.(*pkgErrors.HTTPError); ok {
		var data map[string]interface{}
		if res.Response != "" {
			data = map[string]interface{}{"response": res.Response}
		}
		response.Error(c, mapped, data)
		return
	}
	h.l.Errorf(c.Request.Context(), "conversation.http: %v", err)
	response.InternalError(c, err)
}
