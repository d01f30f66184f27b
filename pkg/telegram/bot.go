package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	ParseModeMarkdown = "Markdown"

	// SecretTokenHeader carries the secret registered with SetWebhook.
	SecretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

	defaultTimeout = 15 * time.Second
)

// Bot is the Telegram Bot API client.
type Bot struct {
	token      string
	apiURL     string
	httpClient *http.Client
}

// NewBot creates a new Telegram Bot client with the given token.
func NewBot(token string) *Bot {
	return &Bot{
		token:      token,
		apiURL:     fmt.Sprintf("https://api.telegram.org/bot%s", token),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// SetAPIURL overrides the default Telegram API URL for testing purposes.
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = url
}

// SetWebhook registers the webhook URL with Telegram.
// A non-empty secret is echoed back by Telegram in SecretTokenHeader.
func (b *Bot) SetWebhook(ctx context.Context, webhookURL, secret string) error {
	var apiResp APIResponse
	if err := b.call(ctx, "setWebhook", setWebhookRequest{URL: webhookURL, SecretToken: secret}, &apiResp); err != nil {
		return fmt.Errorf("failed to set webhook: %w", err)
	}
	if !apiResp.OK {
		return fmt.Errorf("telegram setWebhook failed: %s", apiResp.Description)
	}
	return nil
}

// SendMessage sends a plain text message to a Telegram chat.
func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	return b.SendMessageWithMode(ctx, chatID, text, "")
}

// SendMessageWithMode sends a message with optional parse mode (e.g. "Markdown").
func (b *Bot) SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error {
	return b.send(ctx, SendMessageRequest{
		ChatID:                chatID,
		Text:                  text,
		ParseMode:             parseMode,
		DisableWebPagePreview: true,
	})
}

// RequestLocation sends text with a one-tap "share location" keyboard.
func (b *Bot) RequestLocation(ctx context.Context, chatID int64, text, buttonText string) error {
	return b.send(ctx, SendMessageRequest{
		ChatID: chatID,
		Text:   text,
		ReplyMarkup: &ReplyMarkup{
			Keyboard:        [][]KeyboardButton{{{Text: buttonText, RequestLocation: true}}},
			ResizeKeyboard:  true,
			OneTimeKeyboard: true,
		},
	})
}

// SendMessageRemoveKeyboard sends text and hides any custom keyboard.
func (b *Bot) SendMessageRemoveKeyboard(ctx context.Context, chatID int64, text string) error {
	return b.send(ctx, SendMessageRequest{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: &ReplyMarkup{RemoveKeyboard: true},
	})
}

func (b *Bot) send(ctx context.Context, payload SendMessageRequest) error {
	if err := b.call(ctx, "sendMessage", payload, nil); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// call posts payload to method. A nil out requires a 200 status; otherwise the
// body is decoded into out regardless of status.
func (b *Bot) call(ctx context.Context, method string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/%s", b.apiURL, method), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode %s response: %w", method, err)
		}
		return nil
	}

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram %s API error %d: %s", method, resp.StatusCode, string(raw))
	}
	return nil
}
