package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	chatHTTP "snowboarding-assistant/internal/chat/delivery/http"
	chatTelegram "snowboarding-assistant/internal/chat/delivery/telegram"
	resortHTTP "snowboarding-assistant/internal/resort/delivery/http"
	"snowboarding-assistant/internal/test"
	usageHTTP "snowboarding-assistant/internal/usage/delivery/http"
)

const environmentProduction = "production"

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestID())
	srv.gin.Use(srv.mw.CORS())

	ctx := context.Background()
	if srv.environment == environmentProduction {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes. Only the chat API is rate
// limited per client; Telegram traffic arrives from a handful of Telegram IPs.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	chatHTTP.RegisterRoutes(api.Group("/chat", srv.mw.RateLimit()), srv.chatHandler)

	if srv.resortHandler != nil {
		resortHTTP.RegisterRoutes(api.Group("/resorts"), srv.resortHandler)
	}
	if srv.usageHandler != nil {
		usageHTTP.RegisterRoutes(api.Group("/usage"), srv.usageHandler)
	}

	if srv.telegramHandler != nil {
		chatTelegram.RegisterRoutes(srv.gin, srv.telegramHandler)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	} else {
		srv.l.Infof(ctx, "Telegram handler not configured, skipping webhook route")
	}

	if srv.testHandler != nil && srv.environment != environmentProduction {
		test.RegisterRoutes(srv.gin.Group("/test"), srv.testHandler)
		srv.l.Infof(ctx, "Test routes registered under /test")
	}
}
