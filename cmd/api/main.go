package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"snowboarding-assistant/config"
	_ "snowboarding-assistant/docs" // Swagger docs
	"snowboarding-assistant/internal/app"
	chatHTTP "snowboarding-assistant/internal/chat/delivery/http"
	chatTelegram "snowboarding-assistant/internal/chat/delivery/telegram"
	"snowboarding-assistant/internal/httpserver"
	"snowboarding-assistant/internal/middleware"
	resortHTTP "snowboarding-assistant/internal/resort/delivery/http"
	"snowboarding-assistant/internal/test"
	usageHTTP "snowboarding-assistant/internal/usage/delivery/http"
	"snowboarding-assistant/pkg/log"
	"snowboarding-assistant/pkg/telegram"
)

// @title       Snowboarding Assistant API
// @description Conversational snowboarding trip assistant with web search, resort distances and usage governance.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
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

	logger.Info(ctx, "Starting Snowboarding Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Pipeline
	a, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to build assistant: ", err)
		os.Exit(1)
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Warnf(ctx, "Close: %v", err)
		}
	}()

	// 4. Telegram (optional)
	var telegramHandler chatTelegram.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = chatTelegram.New(logger, a.Chat, bot, cfg.Telegram.SecretToken)
		registerWebhook(ctx, logger, bot, cfg.Telegram)
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		Middleware:      middleware.New(logger, cfg.CORS, cfg.RateLimit),
		ReadyCheck:      a.Ping,
		ChatHandler:     chatHTTP.New(logger, a.Chat),
		ResortHandler:   resortHTTP.New(logger, a.Resorts),
		UsageHandler:    usageHTTP.New(logger, a.Governor),
		TelegramHandler: telegramHandler,
		TestHandler:     test.New(logger, a.Router, a.Chat),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// registerWebhook points Telegram at this server: the configured URL, or an
// ngrok tunnel when none is set.
func registerWebhook(ctx context.Context, logger log.Logger, bot *telegram.Bot, cfg config.TelegramConfig) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" {
		ngrokURL, err := detectNgrokURL(ctx, ngrokAPIBase)
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
			return
		}
		webhookURL = ngrokURL + "/webhook/telegram"
		logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
	}

	if err := bot.SetWebhook(ctx, webhookURL, cfg.SecretToken); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
}
