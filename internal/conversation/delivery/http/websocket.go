package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"fitness-agent/internal/conversation"
	"fitness-agent/internal/model"
)

const (
	wsReadLimit   = 64 << 10
	wsWriteWait   = 10 * time.Second
	wsIdleTimeout = 5 * time.Minute
)

// Stream serves chat over a websocket. Each text frame is a chatReq and is
// answered with a chatResp, one message at a time. Rejected and failed
// requests are answered with a wsError.
func (h *handler) Stream(checkOrigin func(r *http.Request) bool) gin.HandlerFunc {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     checkOrigin,
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			h.l.Warnf(ctx, "conversation.http.Stream: upgrade: %v", err)
			return
		}
		defer conn.Close()
		conn.SetReadLimit(wsReadLimit)

		for {
			_ = conn.SetReadDeadline(time.Now().Add(wsIdleTimeout))

			var req chatReq
			if err := conn.ReadJSON(&req); err != nil {
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					h.l.Debugf(ctx, "conversation.http.Stream: read: %v", err)
				}
				return
			}

			var reply any
			res, err := h.uc.HandleMessage(ctx, req.UserID, req.Message)
			var ve *model.ValidationError
			switch {
			case errors.As(err, &ve):
				reply = wsError{Error: ve.Err.Error(), Response: res.Response}
			case err != nil:
				reply = wsError{Error: err.Error()}
			case res.Status == conversation.StatusRequestFailed:
				reply = wsError{Error: string(res.Status), Response: res.Response}
			default:
				reply = h.newChatResp(res)
			}

			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteJSON(reply); err != nil {
				h.l.Warnf(ctx, "conversation.http.Stream: write: %v", err)
				return
			}
		}
	}
}
