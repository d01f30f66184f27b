package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	"snowboarding-assistant/internal/chat"
	pkgLog "snowboarding-assistant/pkg/log"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Bot is the subset of the Telegram client the handler uses.
type Bot interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error
	RequestLocation(ctx context.Context, chatID int64, text, buttonText string) error
	SendMessageRemoveKeyboard(ctx context.Context, chatID int64, text string) error
}

type handler struct {
	l      pkgLog.Logger
	uc     chat.UseCase
	bot    Bot
	secret string
	// spawn runs update processing after the webhook has been acknowledged.
	spawn  func(func())
}

// New creates a new Telegram delivery handler. An empty secret disables the
// webhook secret check.
func New(l pkgLog.Logger, uc chat.UseCase, bot Bot, secret string) Handler {
	return &handler{
		l:      l,
		uc:     uc,
		bot:    bot,
		secret: secret,
		spawn:  func(f func()) { go f() },
	}
}
