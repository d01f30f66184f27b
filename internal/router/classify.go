package router

import (
	"context"
	"strings"
	"time"

	"snowboarding-assistant/internal/agent"
	"snowboarding-assistant/internal/agent/prompt"
	"snowboarding-assistant/internal/model"
	"snowboarding-assistant/pkg/llmprovider"
	"snowboarding-assistant/pkg/retry"
)

// Classify decides whether utterance needs a web search. It never fails:
// exhausted retries degrade to agent.NoTool.
func (r *SemanticRouter) Classify(ctx context.Context, utterance string, history []model.Turn) Output {
	needsLocation := MentionsLocation(utterance)
	if strings.TrimSpace(utterance) == "" {
		return Output{Decision: agent.NoTool(false), Degraded: true, Reason: ReasonEmptyMessage}
	}

	req := llmprovider.GenerateRequest{
		Messages:    r.buildMessages(utterance, history),
		Model:       r.cfg.Model,
		Temperature: r.cfg.Temperature,
	}

	attempts := 0
	policy := retry.Policy{
		MaxAttempts: r.cfg.MaxAttempts,
		BaseDelay:   r.cfg.BaseDelay,
		Factor:      2,
		Sleep:       r.sleep,
		OnRetry: func(attempt int, class retry.Class, delay time.Duration, err error) {
			r.l.Warnf(ctx, "%s: attempt %d failed (%s), retrying in %s: %v", LogPrefixClassify, attempt, class, delay, err)
		},
	}

	raw, err := retry.Do(ctx, policy, func(ctx context.Context) (string, error) {
		attempts++
		if r.limiter != nil {
			if err := r.limiter.Acquire(ctx); err != nil {
				return "", retry.Permanent(err)
			}
		}
		return r.llm.Generate(ctx, req)
	})
	if err != nil {
		r.l.Warnf(ctx, "%s: %s after %d attempt(s): %v", LogPrefixClassify, ReasonLLMFailed, attempts, err)
		return Output{Decision: agent.NoTool(needsLocation), Attempts: attempts, Degraded: true, Reason: ReasonLLMFailed}
	}

	decision, ok := ParseDecision(raw, utterance, needsLocation)
	out := Output{Decision: decision, Raw: truncate(raw, DefaultMaxReplyChars), Attempts: attempts}
	if !ok {
		out.Degraded = true
		out.Reason = ReasonUnparseable
		r.l.Warnf(ctx, "%s: %s: %q", LogPrefixClassify, ReasonUnparseable, out.Raw)
	}

	r.l.Infof(ctx, "%s: search=%t location=%t query=%q", LogPrefixClassify, decision.NeedsSearch, decision.NeedsLocation, decision.SearchQuery)
	return out
}

func (r *SemanticRouter) buildMessages(utterance string, history []model.Turn) []llmprovider.Message {
	msgs := []llmprovider.Message{{Role: llmprovider.RoleSystem, Content: prompt.Classifier}}

	var window []model.Turn
	for _, t := range history {
		if (t.Role == model.RoleUser || t.Role == model.RoleAssistant) && strings.TrimSpace(t.Content) != "" {
			window = append(window, t)
		}
	}
	if n := len(window); n > 0 && window[n-1].Role == model.RoleUser && window[n-1].Content == utterance {
		window = window[:n-1]
	}
	if len(window) > r.cfg.HistoryTurns {
		window = window[len(window)-r.cfg.HistoryTurns:]
	}
	for _, t := range window {
		msgs = append(msgs, llmprovider.Message{Role: string(t.Role), Content: t.Content})
	}

	return append(msgs, llmprovider.Message{Role: llmprovider.RoleUser, Content: utterance})
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
