package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitness-agent/config"
	_ "fitness-agent/docs" // Swagger docs
	"fitness-agent/internal/httpserver"
	"fitness-agent/internal/store"
	"fitness-agent/internal/store/memory"
	"fitness-agent/internal/store/sqlite"
	"fitness-agent/pkg/datemath"
	"fitness-agent/pkg/gcalendar"
	"fitness-agent/pkg/llmprovider"
	"fitness-agent/pkg/log"
	"fitness-agent/pkg/telegram"
)

// @title       Fitness AI Agent API
// @description Conversational food logging, goals, summaries and reminders backed by LLM providers.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Fitness AI Agent...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Record store
	db, err := openStore(ctx, cfg.Store, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to open %s store: %v", cfg.Store.Driver, err)
		return
	}
	defer db.Close()

	// 4. LLM providers
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		return
	}
	llm := llmprovider.NewManager(providers, managerConfig(cfg.LLM), logger)
	for _, p := range providers {
		logger.Infof(ctx, "LLM provider ready: %s (%s)", p.Name(), p.Model())
	}

	// 5. Date math in the user's timezone
	dates, err := datemath.NewParser(cfg.Conversation.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Conversation.Timezone, err)
		dates, _ = datemath.NewParser("UTC")
	}

	// 6. Google Calendar (optional, enables reminders)
	var calendar gcalendar.ICalendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "→ Run `go run ./scripts/gcal-auth` to generate the token")
		} else {
			calendar = client
			logger.Info(ctx, "✅ Google Calendar initialized")
		}
	}

	// 7. Telegram (optional)
	var bot *telegram.Bot
	if cfg.Telegram.BotToken != "" {
		bot = telegram.NewBot(cfg.Telegram.BotToken)
		registerWebhook(ctx, logger, bot, cfg.Telegram)
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 8. HTTP Server
	srvCfg := httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Store:          db,
		LLM:            llm,
		Dates:          dates,
		Conversation:   cfg.Conversation,
		RateLimit:      cfg.RateLimit,
		CORS:           cfg.CORS,
		Calendar:       calendar,
		CalendarID:     cfg.GoogleCalendar.CalendarID,
		TelegramSecret: cfg.Telegram.WebhookSecret,
	}
	if bot != nil {
		srvCfg.TelegramBot = bot
	}
	httpServer, err := httpserver.New(logger, srvCfg)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func openStore(ctx context.Context, cfg config.StoreConfig, l log.Logger) (store.Store, error) {
	switch cfg.Driver {
	case "memory":
		l.Warn(ctx, "Using in-memory store, records are lost on restart")
		return memory.New(), nil
	case "sqlite", "":
		return sqlite.Open(ctx, cfg.Path, l)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

// managerConfig converts the string durations of the LLM section. Bad values
// fall back to the defaults.
func managerConfig(cfg config.LLMConfig) *llmprovider.Config {
	return &llmprovider.Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      parseDuration(cfg.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.MaxTotalTimeout, 60*time.Second),
		CallTimeout:     parseDuration(cfg.CallTimeout, 30*time.Second),
	}
}

func parseDuration(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

// registerWebhook points Telegram at this server: the configured URL, or the
// ngrok tunnel when one is running.
func registerWebhook(ctx context.Context, l log.Logger, bot *telegram.Bot, cfg config.TelegramConfig) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" && cfg.NgrokAPIURL != "" {
		tunnel, err := newTunnelDetector(cfg.NgrokAPIURL).Detect(ctx)
		if err != nil {
			l.Warnf(ctx, "Could not detect ngrok URL: %v", err)
		} else {
			webhookURL = tunnel + "/webhook/telegram"
			l.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
		}
	}
	if webhookURL == "" {
		l.Warn(ctx, "Telegram webhook URL not set, updates will not arrive")
		return
	}

	if err := bot.SetWebhook(ctx, webhookURL, cfg.WebhookSecret); err != nil {
		l.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	l.Infof(ctx, "✅ Telegram webhook registered at %s", webhookURL)
}
