package telegram

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"snowboarding-assistant/internal/chat"
	pkgLog "snowboarding-assistant/pkg/log"
	pkgResponse "snowboarding-assistant/pkg/response"
	pkgTelegram "snowboarding-assistant/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It acknowledges immediately and processes the message in the background,
// because Telegram expects a response within a few seconds and a turn with
// search and rate-limit waits can take longer.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if h.secret != "" {
		got := c.GetHeader(pkgTelegram.SecretTokenHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.secret)) != 1 {
			h.l.Warnf(ctx, "internal.chat.delivery.telegram.HandleWebhook: rejected update with bad secret")
			pkgResponse.Unauthorized(c)
			return
		}
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "internal.chat.delivery.telegram.HandleWebhook: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (edited messages, channel posts, etc.)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	reqID := pkgLog.RequestID(ctx)
	h.spawn(func() {
		// Detached from the HTTP request, which is cancelled once we respond.
		bgCtx := pkgLog.WithRequestID(context.Background(), reqID)
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "internal.chat.delivery.telegram.processMessage: %v", err)
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, MsgProcessingFailed)
		}
	})

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	chatID := msg.Chat.ID
	sessionID := fmt.Sprintf("%s%d", sessionPrefix, chatID)

	if msg.Location != nil {
		return h.saveLocation(ctx, chatID, sessionID, msg.Location)
	}

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return h.bot.SendMessage(ctx, chatID, MsgUnsupported)
	}

	// ---- Built-in commands ----
	switch command(text) {
	case CommandStart:
		if err := h.bot.SendMessageWithMode(ctx, chatID, MsgWelcome, pkgTelegram.ParseModeMarkdown); err != nil {
			return err
		}
		return h.bot.RequestLocation(ctx, chatID, MsgAskLocation, MsgLocationButton)
	case CommandHelp:
		return h.bot.SendMessageWithMode(ctx, chatID, MsgHelp, pkgTelegram.ParseModeMarkdown)
	case CommandReset:
		if err := h.uc.Reset(ctx, sessionID); err != nil {
			return err
		}
		return h.bot.SendMessageRemoveKeyboard(ctx, chatID, MsgReset)
	case CommandLocation:
		return h.bot.RequestLocation(ctx, chatID, MsgAskLocation, MsgLocationButton)
	case CommandForget:
		if _, err := h.uc.RevokeLocation(ctx, sessionID); err != nil {
			return err
		}
		return h.bot.SendMessageRemoveKeyboard(ctx, chatID, MsgLocationForgot)
	}

	out, err := h.uc.Send(ctx, chat.SendInput{SessionID: sessionID, Message: text})
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) || errors.Is(err, chat.ErrMessageTooLong) {
			return h.bot.SendMessage(ctx, chatID, "Sorry, "+err.Error()+".")
		}
		return fmt.Errorf("chat send: %w", err)
	}

	h.reply(ctx, chatID, out.Reply)

	if out.Decision.NeedsLocation && !out.LocationUsed {
		return h.bot.RequestLocation(ctx, chatID, MsgNudgeLocation, MsgLocationButton)
	}
	return nil
}

func (h *handler) saveLocation(ctx context.Context, chatID int64, sessionID string, loc *pkgTelegram.Location) error {
	out, err := h.uc.GrantLocation(ctx, chat.GrantLocationInput{
		SessionID: sessionID,
		Lat:       loc.Latitude,
		Lon:       loc.Longitude,
	})
	if err != nil {
		if errors.Is(err, chat.ErrInvalidCoordinates) {
			return h.bot.SendMessage(ctx, chatID, MsgLocationInvalid)
		}
		return fmt.Errorf("grant location: %w", err)
	}
	return h.bot.SendMessageRemoveKeyboard(ctx, chatID, fmt.Sprintf(MsgLocationSaved, out.Location.DisplayAddress()))
}

// reply sends Markdown, falling back to plain text when Telegram rejects the markup.
func (h *handler) reply(ctx context.Context, chatID int64, text string) {
	if err := h.bot.SendMessageWithMode(ctx, chatID, text, pkgTelegram.ParseModeMarkdown); err != nil {
		h.l.Warnf(ctx, "internal.chat.delivery.telegram.reply: markdown rejected, sending plain text: %v", err)
		if err := h.bot.SendMessage(ctx, chatID, text); err != nil {
			h.l.Errorf(ctx, "internal.chat.delivery.telegram.reply: %v", err)
		}
	}
}

// command returns the bot command in text, without any @botname suffix, or "".
func command(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	cmd := strings.Fields(text)[0]
	if i := strings.IndexByte(cmd, '@'); i >= 0 {
		cmd = cmd[:i]
	}
	return strings.ToLower(cmd)
}
