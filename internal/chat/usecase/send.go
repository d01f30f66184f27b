package usecase

import (
	"context"
	"fmt"
	"html"
	"strings"
	"unicode/utf8"

	"snowboarding-assistant/internal/agent/orchestrator"
	"snowboarding-assistant/internal/chat"
	"snowboarding-assistant/internal/session"
)

// Send runs one turn for the session and stores the updated history.
func (uc *implUseCase) Send(ctx context.Context, input chat.SendInput) (chat.SendOutput, error) {
	msg, err := uc.clean(input.Message)
	if err != nil {
		return chat.SendOutput{}, err
	}

	id := strings.TrimSpace(input.SessionID)
	if id == "" {
		id = session.NewID()
	}
	sess, err := uc.sessions.Get(id)
	if err != nil {
		return chat.SendOutput{}, err
	}

	out := uc.orch.Respond(ctx, orchestrator.RespondInput{
		Utterance: msg,
		History:   sess.History,
		Location:  sess.Location,
	})

	if _, err := uc.sessions.SaveHistory(id, out.History); err != nil {
		return chat.SendOutput{}, fmt.Errorf("save history: %w", err)
	}

	return chat.SendOutput{
		SessionID:         id,
		Reply:             out.Text,
		Decision:          out.Decision,
		SearchUsed:        out.SearchUsed,
		SearchUnavailable: out.SearchUnavailable,
		LocationUsed:      out.LocationUsed,
		Links:             out.Links,
		Trace:             out.Trace,
	}, nil
}

// clean strips markup from user input and enforces the length limit.
func (uc *implUseCase) clean(raw string) (string, error) {
	if !utf8.ValidString(raw) {
		raw = strings.ToValidUTF8(raw, "")
	}
	msg := strings.TrimSpace(html.UnescapeString(uc.sanitizer.Sanitize(raw)))
	if msg == "" {
		return "", chat.ErrEmptyMessage
	}
	if utf8.RuneCountInString(msg) > chat.MaxMessageChars {
		return "", chat.ErrMessageTooLong
	}
	return msg, nil
}
