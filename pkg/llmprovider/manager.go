package llmprovider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"snowboarding-assistant/pkg/log"
	"snowboarding-assistant/pkg/retry"
)

// Manager orchestrates provider selection, fallback, and retry logic
type Manager struct {
	providers []Provider
	config    *Config
	policy    retry.Policy
	logger    log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	RetryMaxDelay   time.Duration
	// RetryMultiplier stretches the delay after 429 and 5xx responses.
	RetryMultiplier float64
	MaxTotalTimeout time.Duration
	MaxPromptChars  int
	// Limiter, when set, takes a request slot before every provider call after
	// the first. The caller is expected to hold the slot for the first call.
	Limiter Limiter
}

// Limiter gates outbound provider calls.
type Limiter interface {
	Acquire(ctx context.Context) error
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{FallbackEnabled: true}
	}
	policy := retry.Default()
	if config.RetryAttempts > 0 {
		policy.MaxAttempts = config.RetryAttempts
	}
	if config.RetryDelay > 0 {
		policy.BaseDelay = config.RetryDelay
	}
	if config.RetryMaxDelay > 0 {
		policy.MaxDelay = config.RetryMaxDelay
	}
	if config.RetryMultiplier > 0 {
		policy.ExtendedMultiplier = config.RetryMultiplier
	}

	return &Manager{
		providers: providers,
		config:    config,
		policy:    policy,
		logger:    logger,
	}
}

// Generate validates req, runs it through the provider chain and returns the reply text.
func (m *Manager) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	resp, err := m.GenerateContent(ctx, &req)
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}

// GenerateContent iterates through providers in priority order with fallback logic
func (m *Manager) GenerateContent(ctx context.Context, req *GenerateRequest) (*Response, error) {
	if err := Validate(req); err != nil {
		return nil, retry.Permanent(err)
	}
	if len(m.providers) == 0 {
		return nil, retry.Permanent(ErrNoProvidersConfigured)
	}

	budget := m.config.MaxPromptChars
	if budget <= 0 {
		budget = DefaultMaxPromptChars
	}
	if n := promptChars(req); n > budget {
		m.logger.Warnf(ctx, "pkg.llmprovider.GenerateContent: prompt is %d chars, budget %d", n, budget)
	}

	if m.config.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var (
		lastErr error
		calls   int
	)
	for i, provider := range m.providers {
		if err := ctx.Err(); err != nil {
			if lastErr == nil {
				lastErr = err
			}
			return nil, fmt.Errorf("global timeout exceeded after trying %d provider(s): %w", i, lastErr)
		}

		resp, err := m.generateWithRetry(ctx, provider, req, &calls)
		if err == nil {
			m.logSuccess(ctx, provider, resp)
			return resp, nil
		}

		m.logFailure(ctx, provider, err)
		lastErr = &ProviderError{Provider: provider.Name(), Err: err}

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

// generateWithRetry runs one provider under the shared retry policy
// calls counts provider calls across the whole chain so retries and fallbacks pass the limiter.
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *GenerateRequest, calls *int) (*Response, error) {
	policy := m.policy
	policy.OnRetry = func(attempt int, class retry.Class, delay time.Duration, err error) {
		m.logger.Warnf(ctx, "pkg.llmprovider.generateWithRetry: provider=%s attempt=%d class=%s retry_in=%s err=%v",
			provider.Name(), attempt, class, delay, err)
	}

	return retry.Do(ctx, policy, func(ctx context.Context) (*Response, error) {
		*calls++
		if *calls > 1 && m.config.Limiter != nil {
			if err := m.config.Limiter.Acquire(ctx); err != nil {
				return nil, retry.Permanent(fmt.Errorf("rate limit: %w", err))
			}
		}
		resp, err := provider.GenerateContent(ctx, req)
		if err != nil {
			return nil, err
		}
		if resp == nil || strings.TrimSpace(resp.Content) == "" {
			return nil, ErrEmptyResponse
		}
		return resp, nil
	})
}

// logSuccess logs successful LLM generation with metrics
func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	usage := resp.Usage
	if usage == nil {
		usage = &Usage{}
	}
	m.logger.Info(ctx, "LLM generation successful",
		"provider", provider.Name(),
		"model", resp.ModelName,
		"input_tokens", usage.InputTokens,
		"output_tokens", usage.OutputTokens,
	)
}

// logFailure logs failed LLM generation attempts
func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warn(ctx, "LLM generation failed",
		"provider", provider.Name(),
		"model", provider.Model(),
		"error", err.Error(),
	)
}
