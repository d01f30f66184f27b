package httpserver

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	chatHTTP "snowboarding-assistant/internal/chat/delivery/http"
	chatTelegram "snowboarding-assistant/internal/chat/delivery/telegram"
	"snowboarding-assistant/internal/middleware"
	resortHTTP "snowboarding-assistant/internal/resort/delivery/http"
	"snowboarding-assistant/internal/test"
	usageHTTP "snowboarding-assistant/internal/usage/delivery/http"
	"snowboarding-assistant/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	mw              middleware.Middleware
	readiness       func(ctx context.Context) error

	// Domain handlers
	chatHandler     chatHTTP.Handler
	resortHandler   resortHTTP.Handler
	usageHandler    usageHTTP.Handler
	telegramHandler chatTelegram.Handler

	// Test domain
	testHandler test.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	Middleware      middleware.Middleware
	// ReadyCheck backs /ready; nil means always ready.
	ReadyCheck      func(ctx context.Context) error

	ChatHandler     chatHTTP.Handler
	ResortHandler   resortHTTP.Handler
	UsageHandler    usageHTTP.Handler
	// TelegramHandler is optional; the webhook route is skipped when nil.
	TelegramHandler chatTelegram.Handler

	// TestHandler is optional and only mounted outside production.
	TestHandler test.Handler
}

// New creates a new HTTPServer instance and maps its routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		mw:              cfg.Middleware,
		readiness:       cfg.ReadyCheck,
		chatHandler:     cfg.ChatHandler,
		resortHandler:   cfg.ResortHandler,
		usageHandler:    cfg.UsageHandler,
		telegramHandler: cfg.TelegramHandler,
		testHandler:     cfg.TestHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatHandler == nil {
		return errors.New("chat handler is required")
	}
	return nil
}
