package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"fitness-agent/internal/conversation"
	chatHTTP "fitness-agent/internal/conversation/delivery/http"
	chatMCP "fitness-agent/internal/conversation/delivery/mcp"
	tgDelivery "fitness-agent/internal/conversation/delivery/telegram"
	chatUC "fitness-agent/internal/conversation/usecase"
	foodRepo "fitness-agent/internal/foodlog/repository/docstore"
	foodUC "fitness-agent/internal/foodlog/usecase"
	goalHTTP "fitness-agent/internal/goal/delivery/http"
	goalRepo "fitness-agent/internal/goal/repository/docstore"
	goalUC "fitness-agent/internal/goal/usecase"
	"fitness-agent/internal/middleware"
	reminderHTTP "fitness-agent/internal/reminder/delivery/http"
	reminderRepo "fitness-agent/internal/reminder/repository/docstore"
	reminderUC "fitness-agent/internal/reminder/usecase"
	"fitness-agent/internal/router"
	summaryHTTP "fitness-agent/internal/summary/delivery/http"
	summaryUC "fitness-agent/internal/summary/usecase"
)

type domains struct {
	chat conversation.UseCase
}

// setupDomains wires the goal, summary and conversation domains.
//
// Each domain follows the same steps:
//  1. Repository over the shared store
//  2. UseCase
//  3. Delivery handler
//  4. Routes under /api/v1
func (srv *HTTPServer) setupDomains(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) domains {
	// Food, goal and summary
	foods := foodUC.New(srv.l, srv.llm, foodRepo.New(srv.store, srv.l))
	goals := goalUC.New(srv.l, goalRepo.New(srv.store, srv.l))
	sum := summaryUC.New(srv.l, foods, goals, srv.dates.Location())

	// Conversation
	r := router.New(srv.llm, srv.l, router.Options{
		Temperature:         srv.conversation.RouterTemperature,
		ConfidenceThreshold: srv.conversation.ConfidenceThreshold,
	})
	chat := chatUC.New(srv.l, srv.llm, r, foods, goals, sum, chatUC.Options{
		MaxMessageLength: srv.conversation.MaxMessageLength,
	})

	// Routes: /api/v1/goals, /summary, /chat, /mcp/tools
	goalHTTP.RegisterRoutes(api, goalHTTP.New(srv.l, goals), mw)
	summaryHTTP.RegisterRoutes(api, summaryHTTP.New(srv.l, sum), mw)
	chatHTTP.RegisterRoutes(api, chatHTTP.New(srv.l, chat), mw)
	chatMCP.RegisterRoutes(api, chatMCP.New(srv.l, chat, goals, sum), mw)

	srv.l.Infof(ctx, "Goal, summary, chat and MCP routes registered")
	return domains{chat: chat}
}

func (srv *HTTPServer) setupReminderDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := reminderRepo.New(srv.store, srv.l)
	uc := reminderUC.New(srv.l, srv.calendar, repo, srv.dates, srv.calendarID)
	reminderHTTP.RegisterRoutes(api, reminderHTTP.New(srv.l, uc), mw)

	srv.l.Infof(ctx, "Reminder routes registered")
}

func (srv *HTTPServer) setupTelegram(ctx context.Context, d domains) {
	srv.telegramHandler = tgDelivery.New(srv.l, d.chat, srv.telegramBot, srv.telegramSecret)
	tgDelivery.RegisterRoutes(srv.gin, srv.telegramHandler)

	srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
}
