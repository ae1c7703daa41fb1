package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/styling-advisor/internal/domain/styling"
	"github.com/yanqian/styling-advisor/internal/infra/config"
	"github.com/yanqian/styling-advisor/internal/infra/llm/chatgpt"
	"github.com/yanqian/styling-advisor/internal/infra/outfitstore"
	"github.com/yanqian/styling-advisor/internal/infra/resilience"
	"github.com/yanqian/styling-advisor/internal/infra/weather/openweather"
	"github.com/yanqian/styling-advisor/internal/infra/weathercache"
)

func provideStylingConfig(cfg *config.Config) styling.Config {
	return styling.Config{
		Model:         cfg.LLM.Model,
		Temperature:   cfg.LLM.Temperature,
		Prompt:        cfg.Advisor.Prompt,
		AdviceEnabled: cfg.Advisor.Enabled,
		WeatherTTL:    cfg.Weather.CacheTTL,
		HistoryLimit:  cfg.Advisor.HistoryLimit,
	}
}

func provideBreakerSettings(cfg *config.Config) resilience.Settings {
	return resilience.Settings{
		MaxRequests:      cfg.Breaker.MaxRequests,
		Interval:         cfg.Breaker.Interval,
		Timeout:          cfg.Breaker.Timeout,
		FailureThreshold: cfg.Breaker.FailureThreshold,
	}
}

func provideWeatherClient(cfg *config.Config, settings resilience.Settings, logger *slog.Logger) styling.WeatherClient {
	if strings.TrimSpace(cfg.Weather.APIKey) == "" {
		logger.Info("weather api key not set, weather tips disabled")
		return nil
	}
	client, err := openweather.NewClient(cfg.Weather.BaseURL, cfg.Weather.APIKey, cfg.Weather.Timeout)
	if err != nil {
		logger.Error("invalid weather configuration, weather tips disabled", "error", err)
		return nil
	}
	if !cfg.Breaker.Enabled {
		return client
	}
	return resilience.NewWeatherClient(client, settings, logger)
}

func provideChatClient(cfg *config.Config, settings resilience.Settings, logger *slog.Logger) styling.ChatClient {
	if !cfg.Advisor.Enabled {
		return nil
	}
	if strings.TrimSpace(cfg.LLM.APIKey) == "" {
		logger.Info("llm api key not set, stylist advice disabled")
		return nil
	}
	client, err := chatgpt.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL)
	if err != nil {
		logger.Error("invalid llm configuration, stylist advice disabled", "error", err)
		return nil
	}
	if !cfg.Breaker.Enabled {
		return client
	}
	return resilience.NewChatClient(client, settings, logger)
}

func provideWeatherCache(cfg *config.Config, logger *slog.Logger) (styling.WeatherCache, func()) {
	noop := func() {}
	if !cfg.Weather.Redis.Enabled {
		return weathercache.NewMemoryCache(), noop
	}
	opt, err := buildValkeyOptions(cfg.Weather.Redis.Addr)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory cache", "error", err)
		return weathercache.NewMemoryCache(), noop
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory cache", "error", err)
		return weathercache.NewMemoryCache(), noop
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory cache", "error", err)
		client.Close()
		return weathercache.NewMemoryCache(), noop
	}
	logger.Info("weather valkey cache enabled", "addr", cfg.Weather.Redis.Addr)
	return weathercache.NewValkeyCache(client, "weather"), client.Close
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}

func provideOutfitStore(cfg *config.Config, logger *slog.Logger) (styling.OutfitStore, func(), error) {
	noop := func() {}
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		logger.Info("outfit store: memory")
		return outfitstore.NewMemoryStore(), noop, nil
	case config.StorageSQLite:
		store, err := outfitstore.OpenSQLiteStore(context.Background(), cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("outfit store: sqlite", "path", cfg.Storage.SQLitePath)
		return store, func() {
			if err := store.Close(); err != nil {
				logger.Error("close sqlite store", "error", err)
			}
		}, nil
	case config.StoragePostgres:
		if pool := openPostgres(cfg.Storage.Postgres, logger); pool != nil {
			logger.Info("outfit store: postgres")
			return outfitstore.NewPostgresStore(pool), pool.Close, nil
		}
		logger.Warn("postgres unavailable, falling back to csv store", "path", cfg.Storage.CSVPath)
	}
	logger.Info("outfit store: csv", "path", cfg.Storage.CSVPath)
	return outfitstore.NewCSVStore(cfg.Storage.CSVPath), noop, nil
}

func openPostgres(cfg config.PostgresConfig, logger *slog.Logger) *pgxpool.Pool {
	poolConfig, err := pgxpool.ParseConfig(strings.TrimSpace(cfg.DSN))
	if err != nil {
		logger.Error("invalid postgres dsn", "error", err)
		return nil
	}
	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolConfig.MinConns = cfg.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool", "error", err)
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed", "error", err)
		pool.Close()
		return nil
	}
	return pool
}
