package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig

	// LLM Provider Abstraction
	LLM        LLMConfig
	Classifier ClassifierConfig
	Assistant  AssistantConfig

	// Tools
	Search   SearchConfig
	Resorts  ResortsConfig
	Geocoder GeocoderConfig

	// Resource limits
	Usage UsageConfig

	// Delivery
	Session  SessionConfig
	Telegram TelegramConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowOrigins []string
}

// RateLimitConfig throttles each HTTP client independently of the LLM request governor.
type RateLimitConfig struct {
	RequestsPerMin int
	Burst          int
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	RetryMaxDelay   string           `yaml:"retry_max_delay"`
	RetryMultiplier float64          `yaml:"retry_multiplier"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"` // Global timeout for entire fallback chain
	MaxPromptChars  int              `yaml:"max_prompt_chars"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// ClassifierConfig tunes the intent classifier call. Its retries are separate from llm.retry_attempts.
type ClassifierConfig struct {
	Model        string
	Temperature  float64
	MaxAttempts  int
	BaseDelay    time.Duration
	HistoryTurns int
}

// AssistantConfig tunes the answer generation step.
type AssistantConfig struct {
	Model        string
	Temperature  float64
	MaxTokens    int
	HistoryTurns int
	TurnTimeout  time.Duration
	Timezone     string
	ResortFilter string
}

type SearchConfig struct {
	// Provider is "tavily", "google" or "none".
	Provider   string
	MaxResults int
	Timeout    time.Duration
	CacheSize  int
	CacheTTL   time.Duration
	Tavily     TavilyConfig
	Google     GoogleSearchConfig
}

type TavilyConfig struct {
	APIKey      string
	BaseURL     string
	SearchDepth string
}

type GoogleSearchConfig struct {
	APIKey   string
	EngineID string
	Endpoint string
}

type ResortsConfig struct {
	DBPath string
	Limit  int
}

type GeocoderConfig struct {
	Enabled   bool
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// UsageConfig configures the search quota and request-rate governor.
type UsageConfig struct {
	// Store is "memory", "sqlite" or "redis".
	Store            string
	SQLitePath       string
	RedisURL         string
	SearchThreshold  int
	SearchWindow     time.Duration
	RefreshInterval  time.Duration
	RequestThreshold int
	RequestWindow    time.Duration
}

type SessionConfig struct {
	Size       int
	TTL        time.Duration
	MaxHistory int
}

type TelegramConfig struct {
	BotToken    string
	WebhookURL  string
	SecretToken string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.CORS.AllowOrigins = splitList(viper.GetString("cors.allow_origins"))
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.RetryMaxDelay = viper.GetString("llm.retry_max_delay")
	cfg.LLM.RetryMultiplier = viper.GetFloat64("llm.retry_multiplier")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")
	cfg.LLM.MaxPromptChars = viper.GetInt("llm.max_prompt_chars")

	// Load provider configurations
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}
	// Single-provider shortcut for environments without a config file.
	if len(cfg.LLM.Providers) == 0 {
		if key := viper.GetString("groq_api_key"); key != "" {
			cfg.LLM.Providers = []ProviderConfig{{
				Name: "groq", Enabled: true, Priority: 1, APIKey: key,
				Model: viper.GetString("assistant.model"), Timeout: "60s",
			}}
		}
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	cfg.Classifier.Model = viper.GetString("classifier.model")
	cfg.Classifier.Temperature = viper.GetFloat64("classifier.temperature")
	cfg.Classifier.MaxAttempts = viper.GetInt("classifier.max_attempts")
	cfg.Classifier.BaseDelay = viper.GetDuration("classifier.base_delay")
	cfg.Classifier.HistoryTurns = viper.GetInt("classifier.history_turns")

	cfg.Assistant.Model = viper.GetString("assistant.model")
	cfg.Assistant.Temperature = viper.GetFloat64("assistant.temperature")
	cfg.Assistant.MaxTokens = viper.GetInt("assistant.max_tokens")
	cfg.Assistant.HistoryTurns = viper.GetInt("assistant.history_turns")
	cfg.Assistant.TurnTimeout = viper.GetDuration("assistant.turn_timeout")
	cfg.Assistant.Timezone = viper.GetString("assistant.timezone")
	cfg.Assistant.ResortFilter = viper.GetString("assistant.resort_filter")

	// Tools
	cfg.Search.Provider = strings.ToLower(viper.GetString("search.provider"))
	cfg.Search.MaxResults = viper.GetInt("search.max_results")
	cfg.Search.Timeout = viper.GetDuration("search.timeout")
	cfg.Search.CacheSize = viper.GetInt("search.cache_size")
	cfg.Search.CacheTTL = viper.GetDuration("search.cache_ttl")
	cfg.Search.Tavily.APIKey = expandEnvVar(viper.GetString("search.tavily.api_key"))
	cfg.Search.Tavily.BaseURL = viper.GetString("search.tavily.base_url")
	cfg.Search.Tavily.SearchDepth = viper.GetString("search.tavily.search_depth")
	if key := viper.GetString("tavily_api_key"); key != "" {
		cfg.Search.Tavily.APIKey = key
	}
	cfg.Search.Google.APIKey = expandEnvVar(viper.GetString("search.google.api_key"))
	cfg.Search.Google.EngineID = expandEnvVar(viper.GetString("search.google.engine_id"))
	cfg.Search.Google.Endpoint = viper.GetString("search.google.endpoint")

	cfg.Resorts.DBPath = viper.GetString("resorts.db_path")
	cfg.Resorts.Limit = viper.GetInt("resorts.limit")

	cfg.Geocoder.Enabled = viper.GetBool("geocoder.enabled")
	cfg.Geocoder.BaseURL = viper.GetString("geocoder.base_url")
	cfg.Geocoder.UserAgent = viper.GetString("geocoder.user_agent")
	cfg.Geocoder.Timeout = viper.GetDuration("geocoder.timeout")

	// Resource limits
	cfg.Usage.Store = strings.ToLower(viper.GetString("usage.store"))
	cfg.Usage.SQLitePath = viper.GetString("usage.sqlite_path")
	cfg.Usage.RedisURL = expandEnvVar(viper.GetString("usage.redis_url"))
	cfg.Usage.SearchThreshold = viper.GetInt("usage.search_threshold")
	cfg.Usage.SearchWindow = viper.GetDuration("usage.search_window")
	cfg.Usage.RefreshInterval = viper.GetDuration("usage.refresh_interval")
	cfg.Usage.RequestThreshold = viper.GetInt("usage.request_threshold")
	cfg.Usage.RequestWindow = viper.GetDuration("usage.request_window")

	// Delivery
	cfg.Session.Size = viper.GetInt("session.size")
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.MaxHistory = viper.GetInt("session.max_history")

	cfg.Telegram.BotToken = expandEnvVar(viper.GetString("telegram.bot_token"))
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.SecretToken = expandEnvVar(viper.GetString("telegram.secret_token"))
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	if err := validateSearchConfig(&cfg.Search); err != nil {
		return nil, err
	}
	if err := validateUsageConfig(&cfg.Usage); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("cors.allow_origins", "*")
	viper.SetDefault("rate_limit.requests_per_min", 60)
	viper.SetDefault("rate_limit.burst", 10)

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 3)
	viper.SetDefault("llm.retry_delay", "2s")
	viper.SetDefault("llm.retry_max_delay", "30s")
	viper.SetDefault("llm.retry_multiplier", 3.0)
	viper.SetDefault("llm.max_total_timeout", "120s")
	viper.SetDefault("llm.max_prompt_chars", 24000)

	viper.SetDefault("classifier.temperature", 0.1)
	viper.SetDefault("classifier.max_attempts", 3)
	viper.SetDefault("classifier.base_delay", "2s")
	viper.SetDefault("classifier.history_turns", 4)

	viper.SetDefault("assistant.model", "llama3-8b-8192")
	viper.SetDefault("assistant.temperature", 0.7)
	viper.SetDefault("assistant.max_tokens", 1024)
	viper.SetDefault("assistant.history_turns", 8)
	viper.SetDefault("assistant.turn_timeout", "3m")
	viper.SetDefault("assistant.timezone", "America/Denver")

	viper.SetDefault("search.provider", "tavily")
	viper.SetDefault("search.max_results", 3)
	viper.SetDefault("search.timeout", "15s")
	viper.SetDefault("search.cache_size", 256)
	viper.SetDefault("search.cache_ttl", "15m")
	viper.SetDefault("search.tavily.search_depth", "basic")

	viper.SetDefault("resorts.db_path", "data/resorts.db")
	viper.SetDefault("resorts.limit", 5)

	viper.SetDefault("geocoder.enabled", true)
	viper.SetDefault("geocoder.base_url", "https://nominatim.openstreetmap.org")
	viper.SetDefault("geocoder.user_agent", "snowboarding-assistant/1.0")
	viper.SetDefault("geocoder.timeout", "10s")

	viper.SetDefault("usage.store", "memory")
	viper.SetDefault("usage.sqlite_path", "data/usage.db")
	viper.SetDefault("usage.search_threshold", 600)
	viper.SetDefault("usage.search_window", "720h")
	viper.SetDefault("usage.refresh_interval", "1h")
	viper.SetDefault("usage.request_threshold", 20)
	viper.SetDefault("usage.request_window", "60s")

	viper.SetDefault("session.size", 10000)
	viper.SetDefault("session.ttl", "2h")
	viper.SetDefault("session.max_history", 20)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	// Check if value is in format ${VAR_NAME}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml or set GROQ_API_KEY")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		// Check required fields
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}

		if provider.Enabled {
			enabledCount++

			// Check priority is valid
			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			// Check for duplicate priorities
			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

func validateSearchConfig(cfg *SearchConfig) error {
	switch cfg.Provider {
	case "tavily", "google", "none":
		return nil
	case "":
		cfg.Provider = "none"
		return nil
	default:
		return fmt.Errorf("search.provider: unknown provider %q", cfg.Provider)
	}
}

func validateUsageConfig(cfg *UsageConfig) error {
	switch cfg.Store {
	case "", "memory":
		cfg.Store = "memory"
	case "sqlite":
		if cfg.SQLitePath == "" {
			return fmt.Errorf("usage.sqlite_path is required for the sqlite store")
		}
	case "redis":
		if cfg.RedisURL == "" {
			return fmt.Errorf("usage.redis_url is required for the redis store")
		}
	default:
		return fmt.Errorf("usage.store: unknown store %q", cfg.Store)
	}
	if cfg.SearchThreshold < 0 || cfg.RequestThreshold < 0 {
		return fmt.Errorf("usage thresholds must not be negative")
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
