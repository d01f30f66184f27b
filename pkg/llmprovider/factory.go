package llmprovider

import (
	"cmp"
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"snowboarding-assistant/config"
	"snowboarding-assistant/pkg/gemini"
	"snowboarding-assistant/pkg/groq"
	"snowboarding-assistant/pkg/log"
)

// InitializeProviders creates Provider instances from config.LLMConfig.
// Returns providers sorted by priority (ascending) with disabled providers filtered out.
// Providers that fail to initialize are skipped instead of failing the service.
func InitializeProviders(ctx context.Context, cfg *config.LLMConfig, l log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var providers []Provider
	var initErrors []string
	for _, p := range enabled {
		provider, err := createProvider(p)
		if err != nil {
			msg := fmt.Sprintf("provider %s (priority %d): %v", p.Name, p.Priority, err)
			initErrors = append(initErrors, msg)
			if l != nil {
				l.Warnf(ctx, "pkg.llmprovider.InitializeProviders: skipping %s", msg)
			}
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}

	return providers, nil
}

// compatDefaults are the endpoints and models of OpenAI-compatible vendors served by the groq client.
var compatDefaults = map[string]struct{ baseURL, model string }{
	"deepseek": {"https://api.deepseek.com/v1", "deepseek-chat"},
	"qwen":     {"https://dashscope-intl.aliyuncs.com/compatible-mode/v1", "qwen-plus"},
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	var timeout time.Duration
	if cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout %q: %w", cfg.Timeout, err)
		}
		timeout = d
	}

	switch cfg.Name {
	case "groq", "openai", "deepseek", "qwen":
		baseURL, model := cfg.BaseURL, cfg.Model
		if d, ok := compatDefaults[cfg.Name]; ok {
			baseURL = cmp.Or(baseURL, d.baseURL)
			model = cmp.Or(model, d.model)
		}
		client, err := groq.New(groq.Config{
			APIKey:  cfg.APIKey,
			Model:   model,
			BaseURL: baseURL,
			Timeout: timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create groq client: %w", err)
		}
		return NewGroqAdapter(client, cfg.Name), nil

	case "gemini":
		client, err := gemini.New(gemini.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			APIURL:  cfg.BaseURL,
			Timeout: timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}
