package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"fitness-agent/config"
	tgDelivery "fitness-agent/internal/conversation/delivery/telegram"
	"fitness-agent/internal/store"
	"fitness-agent/pkg/datemath"
	"fitness-agent/pkg/gcalendar"
	"fitness-agent/pkg/llmprovider"
	"fitness-agent/pkg/log"
)

const shutdownTimeout = 15 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Fitness agent
	store        store.Store
	llm          llmprovider.Generator
	dates        *datemath.Parser
	conversation config.ConversationConfig
	rateLimit    config.RateLimitConfig
	cors         config.CORSConfig

	// Optional integrations
	calendar       gcalendar.ICalendar
	calendarID     string
	telegramBot    tgDelivery.Sender
	telegramSecret string

	// Set by mapHandlers
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Store        store.Store
	LLM          llmprovider.Generator
	Dates        *datemath.Parser
	Conversation config.ConversationConfig
	RateLimit    config.RateLimitConfig
	CORS         config.CORSConfig

	// Reminders are only served when Calendar is set.
	Calendar   gcalendar.ICalendar
	CalendarID string

	// The Telegram webhook is only served when TelegramBot is set.
	TelegramBot    tgDelivery.Sender
	TelegramSecret string
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		store:          cfg.Store,
		llm:            cfg.LLM,
		dates:          cfg.Dates,
		conversation:   cfg.Conversation,
		rateLimit:      cfg.RateLimit,
		cors:           cfg.CORS,
		calendar:       cfg.Calendar,
		calendarID:     cfg.CalendarID,
		telegramBot:    cfg.TelegramBot,
		telegramSecret: cfg.TelegramSecret,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.store == nil {
		return errors.New("store is required")
	}
	if srv.llm == nil {
		return errors.New("llm is required")
	}
	if srv.dates == nil {
		return errors.New("date parser is required")
	}
	return nil
}

// Handler exposes the engine, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
