package telegram

import (
	"context"
	"sync"

	"github.com/gin-gonic/gin"

	"fitness-agent/internal/conversation"
	"fitness-agent/pkg/log"
)

// Sender delivers replies to a chat. *telegram.Bot implements it.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)

	// Wait blocks until every accepted update has been answered.
	Wait()
}

type handler struct {
	l      log.Logger
	uc     conversation.UseCase
	bot    Sender
	secret string
	wg     sync.WaitGroup
}

// New creates a new Telegram delivery handler. A non-empty secret must match
// the X-Telegram-Bot-Api-Secret-Token header of every update.
func New(l log.Logger, uc conversation.UseCase, bot Sender, secret string) Handler {
	return &handler{
		l:      l,
		uc:     uc,
		bot:    bot,
		secret: secret,
	}
}
