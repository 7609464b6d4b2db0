package telegram

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgErrors "fitness-agent/pkg/errors"
	"fitness-agent/pkg/log"
	"fitness-agent/pkg/response"
	pkgTelegram "fitness-agent/pkg/telegram"
)

var errWrongSecret = pkgErrors.NewHTTPError(150001, "Wrong secret token").WithStatus(http.StatusUnauthorized)

// HandleWebhook acknowledges the update at once and answers it in the
// background: Telegram retries updates that take more than a few seconds.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if h.secret != "" {
		got := c.GetHeader(pkgTelegram.HeaderSecretToken)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.secret)) != 1 {
			h.l.Warnf(ctx, "telegram handler: rejected update with wrong secret token")
			response.Error(c, errWrongSecret, nil)
			return
		}
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		response.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (edits, channel posts, etc.)
	if update.Message == nil || update.Message.Chat == nil || strings.TrimSpace(update.Message.Text) == "" {
		response.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	bgCtx := context.WithoutCancel(ctx)

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		ctx, cancel := context.WithTimeout(bgCtx, processTimeout)
		defer cancel()

		if err := h.processMessage(ctx, msg); err != nil {
			h.l.Errorf(ctx, "telegram handler: processMessage failed: %v", err)
		}
	}()

	response.OK(c, map[string]string{"status": "accepted"})
}

func (h *handler) Wait() {
	h.wg.Wait()
}

// processMessage answers commands directly and sends everything else through
// the conversation.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	// Group chats address commands as /start@BotName.
	cmd, _, _ := strings.Cut(strings.Fields(text)[0], "@")
	switch cmd {
	case commandStart:
		return h.bot.SendMessage(ctx, msg.Chat.ID, replyStart)
	case commandHelp:
		return h.bot.SendMessage(ctx, msg.Chat.ID, replyHelp)
	}

	userID := userIDFor(msg)
	ctx = log.WithUserID(ctx, userID)

	// Validation errors come with a reply too.
	res, err := h.uc.HandleMessage(ctx, userID, text)
	if err != nil {
		h.l.Warnf(ctx, "telegram handler: HandleMessage: %v", err)
	}
	reply := res.Response
	if reply == "" {
		reply = replyFailed
	}
	return h.bot.SendMessage(ctx, msg.Chat.ID, reply)
}

// userIDFor keys a conversation by the Telegram user, or by the chat when
// the sender is hidden.
func userIDFor(msg *pkgTelegram.Message) string {
	if msg.From != nil {
		return fmt.Sprintf("%s%d", userIDPrefix, msg.From.ID)
	}
	return fmt.Sprintf("%s%d", userIDPrefix, msg.Chat.ID)
}
