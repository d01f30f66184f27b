// Package app wires configuration into the request pipeline shared by the
// HTTP server, the Telegram bot and the terminal client.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"snowboarding-assistant/config"
	"snowboarding-assistant/internal/agent/assembler"
	"snowboarding-assistant/internal/agent/orchestrator"
	"snowboarding-assistant/internal/agent/tools"
	"snowboarding-assistant/internal/chat"
	chatUC "snowboarding-assistant/internal/chat/usecase"
	"snowboarding-assistant/internal/resort"
	resortRepo "snowboarding-assistant/internal/resort/repository/sqlite"
	resortUC "snowboarding-assistant/internal/resort/usecase"
	"snowboarding-assistant/internal/router"
	"snowboarding-assistant/internal/session"
	"snowboarding-assistant/internal/usage"
	usageRepo "snowboarding-assistant/internal/usage/repository"
	"snowboarding-assistant/internal/usage/repository/memory"
	usageRedis "snowboarding-assistant/internal/usage/repository/redis"
	usageSQLite "snowboarding-assistant/internal/usage/repository/sqlite"
	usageUC "snowboarding-assistant/internal/usage/usecase"
	"snowboarding-assistant/pkg/googlesearch"
	"snowboarding-assistant/pkg/llmprovider"
	"snowboarding-assistant/pkg/log"
	"snowboarding-assistant/pkg/nominatim"
	"snowboarding-assistant/pkg/sqlitedb"
	"snowboarding-assistant/pkg/tavily"
)

const logPrefixBuild = "internal.app.Build"

// App holds every long-lived component. Geocoder is nil when disabled.
type App struct {
	Config       *config.Config
	Logger       log.Logger
	Orchestrator orchestrator.Orchestrator
	Router       router.Router
	Resorts      resort.UseCase
	Governor     usage.Governor
	Sessions     *session.Store
	Geocoder     *nominatim.Client
	Chat         chat.UseCase

	closers []func() error
	pingers []func(ctx context.Context) error
}

// Build creates the pipeline. Only a missing LLM provider is fatal; optional
// pieces (search, resort database, durable usage store) degrade with a warning.
func Build(ctx context.Context, cfg *config.Config, l log.Logger) (*App, error) {
	a := &App{Config: cfg, Logger: l}

	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, l)
	if err != nil {
		return nil, fmt.Errorf("init llm providers: %w", err)
	}
	managerCfg, err := managerConfig(cfg.LLM)
	if err != nil {
		return nil, err
	}

	searcher, source := a.buildSearcher(ctx, cfg.Search)

	store, err := a.buildUsageStore(ctx, cfg.Usage)
	if err != nil {
		a.Close()
		return nil, err
	}
	governor := usageUC.New(store, source, usageUC.Config{
		Search:          usage.Limit{Threshold: cfg.Usage.SearchThreshold, Window: cfg.Usage.SearchWindow},
		Request:         usage.Limit{Threshold: cfg.Usage.RequestThreshold, Window: cfg.Usage.RequestWindow},
		RefreshInterval: cfg.Usage.RefreshInterval,
	}, l)
	a.Governor = governor

	managerCfg.Limiter = governor
	generator := llmprovider.NewManager(providers, managerCfg, l)

	// The classifier retries on its own schedule, so its manager makes a single attempt per call.
	classifierCfg := *managerCfg
	classifierCfg.RetryAttempts = 1
	classifierLLM := llmprovider.NewManager(providers, &classifierCfg, l)

	a.Resorts = a.buildResorts(ctx, cfg.Resorts)

	a.Router = router.New(classifierLLM, governor, router.Config{
		Model:        cfg.Classifier.Model,
		Temperature:  cfg.Classifier.Temperature,
		MaxAttempts:  cfg.Classifier.MaxAttempts,
		BaseDelay:    cfg.Classifier.BaseDelay,
		HistoryTurns: cfg.Classifier.HistoryTurns,
	}, l)

	deps := orchestrator.Deps{
		Router:  a.Router,
		Resorts: tools.NewResortDistances(a.Resorts, cfg.Resorts.Limit, l),
		Assembler: assembler.New(assembler.Config{
			HistoryTurns: cfg.Assistant.HistoryTurns,
			Timezone:     cfg.Assistant.Timezone,
		}),
		LLM:     generator,
		Limiter: governor,
	}
	if searcher != nil {
		deps.Search = tools.NewWebSearch(searcher, governor, tools.SearchConfig{
			MaxResults: cfg.Search.MaxResults,
			CacheSize:  cfg.Search.CacheSize,
			CacheTTL:   cfg.Search.CacheTTL,
		}, l)
	}
	a.Orchestrator = orchestrator.New(deps, orchestrator.Config{
		Model:        cfg.Assistant.Model,
		Temperature:  cfg.Assistant.Temperature,
		MaxTokens:    cfg.Assistant.MaxTokens,
		TurnTimeout:  cfg.Assistant.TurnTimeout,
		ResortFilter: cfg.Assistant.ResortFilter,
	}, l)

	a.Sessions = session.New(session.Config{
		Size:       cfg.Session.Size,
		TTL:        cfg.Session.TTL,
		MaxHistory: cfg.Session.MaxHistory,
	})

	if cfg.Geocoder.Enabled {
		a.Geocoder = nominatim.New(nominatim.Config{
			BaseURL:   cfg.Geocoder.BaseURL,
			UserAgent: cfg.Geocoder.UserAgent,
			Timeout:   cfg.Geocoder.Timeout,
		})
	}

	var geocoder chatUC.Geocoder
	if a.Geocoder != nil {
		geocoder = a.Geocoder
	}
	a.Chat = chatUC.New(a.Orchestrator, a.Sessions, geocoder, l)

	l.Infof(ctx, "%s: %d llm provider(s), search=%s, usage store=%s", logPrefixBuild, len(providers), cfg.Search.Provider, cfg.Usage.Store)
	return a, nil
}

// Close releases databases and connections in reverse order of creation.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

// Ping checks every backing store that was opened.
func (a *App) Ping(ctx context.Context) error {
	var errs []error
	for _, ping := range a.pingers {
		if err := ping(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (a *App) buildSearcher(ctx context.Context, cfg config.SearchConfig) (tools.Searcher, usage.UsageSource) {
	switch cfg.Provider {
	case "tavily":
		client, err := tavily.New(tavily.Config{
			APIKey:      cfg.Tavily.APIKey,
			BaseURL:     cfg.Tavily.BaseURL,
			SearchDepth: cfg.Tavily.SearchDepth,
			Timeout:     cfg.Timeout,
		})
		if err != nil {
			a.Logger.Warnf(ctx, "%s: web search disabled: %v", logPrefixBuild, err)
			return nil, nil
		}
		return tools.NewTavilySearcher(client), tools.TavilyUsage{Client: client}
	case "google":
		client, err := googlesearch.New(ctx, googlesearch.Config{
			APIKey:   cfg.Google.APIKey,
			EngineID: cfg.Google.EngineID,
			Endpoint: cfg.Google.Endpoint,
			Timeout:  cfg.Timeout,
		})
		if err != nil {
			a.Logger.Warnf(ctx, "%s: web search disabled: %v", logPrefixBuild, err)
			return nil, nil
		}
		return tools.NewGoogleSearcher(client), nil
	default:
		a.Logger.Infof(ctx, "%s: web search disabled", logPrefixBuild)
		return nil, nil
	}
}

func (a *App) buildUsageStore(ctx context.Context, cfg config.UsageConfig) (usageRepo.Store, error) {
	switch cfg.Store {
	case "sqlite":
		db, err := a.openSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("usage store: %w", err)
		}
		return usageSQLite.New(ctx, db)
	case "redis":
		rdb, err := usageRedis.NewClient(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("usage store: %w", err)
		}
		a.closers = append(a.closers, rdb.Close)
		a.pingers = append(a.pingers, func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
		if err := rdb.Ping(ctx).Err(); err != nil {
			a.Logger.Warnf(ctx, "%s: redis ping failed, counters stay best-effort: %v", logPrefixBuild, err)
		}
		return usageRedis.New(rdb), nil
	default:
		return memory.New(), nil
	}
}

// buildResorts opens and seeds the resort database. Any failure falls back to
// the built-in minimal set and never aborts startup.
func (a *App) buildResorts(ctx context.Context, cfg config.ResortsConfig) resort.UseCase {
	db, err := a.openSQLite(ctx, cfg.DBPath)
	if err != nil {
		a.Logger.Warnf(ctx, "%s: resort database unavailable, using built-in resorts: %v", logPrefixBuild, err)
		return resortUC.New(nil, a.Logger)
	}
	repo, err := resortRepo.New(ctx, db, a.Logger)
	if err != nil {
		a.Logger.Warnf(ctx, "%s: resort database unavailable, using built-in resorts: %v", logPrefixBuild, err)
		return resortUC.New(nil, a.Logger)
	}
	uc := resortUC.New(repo, a.Logger)
	if _, err := uc.Seed(ctx); err != nil {
		a.Logger.Warnf(ctx, "%s: seed resorts: %v", logPrefixBuild, err)
	}
	return uc
}

func (a *App) openSQLite(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sqlitedb.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, db.Close)
	a.pingers = append(a.pingers, db.PingContext)
	return db, nil
}

func managerConfig(cfg config.LLMConfig) (*llmprovider.Config, error) {
	out := &llmprovider.Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryMultiplier: cfg.RetryMultiplier,
		MaxPromptChars:  cfg.MaxPromptChars,
	}
	var err error
	if out.RetryDelay, err = parseDuration("llm.retry_delay", cfg.RetryDelay); err != nil {
		return nil, err
	}
	if out.RetryMaxDelay, err = parseDuration("llm.retry_max_delay", cfg.RetryMaxDelay); err != nil {
		return nil, err
	}
	if out.MaxTotalTimeout, err = parseDuration("llm.max_total_timeout", cfg.MaxTotalTimeout); err != nil {
		return nil, err
	}
	return out, nil
}

func parseDuration(key, s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, s, err)
	}
	return d, nil
}
