package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/AndrewK67/shorts-studio/internal/config"
	"github.com/AndrewK67/shorts-studio/internal/region"
	"github.com/AndrewK67/shorts-studio/internal/server"
	"github.com/AndrewK67/shorts-studio/internal/service/ai"
	"github.com/AndrewK67/shorts-studio/internal/service/cache"
	"github.com/AndrewK67/shorts-studio/internal/service/dedupe"
	"github.com/AndrewK67/shorts-studio/internal/service/generator"
	"github.com/AndrewK67/shorts-studio/internal/service/profile"
	"github.com/AndrewK67/shorts-studio/internal/service/store"
)

// Container bundles the assembled services behind the HTTP server.
type Container struct {
	Config *config.Config
	Logger *zap.Logger
	Server *server.Server

	cacheSvc *cache.CacheService
	storeSvc store.Store
}

// Close releases infrastructure handles in reverse construction order.
func (c *Container) Close() {
	if c.storeSvc != nil {
		_ = c.storeSvc.Close()
	}
	if c.cacheSvc != nil {
		_ = c.cacheSvc.Close()
	}
}

// Build assembles all infrastructure services. Heavy initialization
// (store/cache/AI clients) happens here so the server stays focused on
// request handling.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (container *Container, err error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var closers []func()
	defer func() {
		if err != nil {
			for i := len(closers) - 1; i >= 0; i-- {
				closers[i]()
			}
		}
	}()

	// Cache is optional; the pipeline degrades to store-only history
	var cacheSvc *cache.CacheService
	if cfg.Redis.Enabled {
		cacheSvc, err = cache.NewCacheService(cache.CacheConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create cache service: %w", err)
		}
		closers = append(closers, func() {
			_ = cacheSvc.Close()
		})
	} else {
		logger.Info("Redis disabled, running without the recent-title cache")
	}

	var storeSvc store.Store
	switch cfg.Store.Backend {
	case "postgres":
		storeSvc, err = store.NewPostgresStore(store.PostgresConfig{
			Host:     cfg.Store.Postgres.Host,
			Port:     cfg.Store.Postgres.Port,
			User:     cfg.Store.Postgres.User,
			Password: cfg.Store.Postgres.Password,
			Database: cfg.Store.Postgres.Database,
		}, logger)
	case "sqlite":
		storeSvc, err = store.NewSQLiteStore(cfg.Store.SQLitePath, logger)
	default:
		err = fmt.Errorf("unsupported store backend %q", cfg.Store.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}
	closers = append(closers, func() {
		_ = storeSvc.Close()
	})

	// AI stack: Gemini primary, OpenAI fallback
	gemini, err := ai.NewGeminiProvider(ctx, cfg.Gemini.APIKey, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini provider: %w", err)
	}

	var fallback ai.JSONProvider
	if cfg.OpenAI.EnableFallback && cfg.OpenAI.APIKey != "" {
		fallback = ai.NewOpenAIProvider(cfg.OpenAI.APIKey, logger)
	}

	modelManager := ai.NewModelManager(ai.ModelManagerOptions{
		Primary:        gemini,
		Fallback:       fallback,
		PrimaryModel:   cfg.Gemini.Model,
		FallbackModel:  cfg.OpenAI.Model,
		EnableFallback: fallback != nil,
	}, logger)

	// Domain services
	catalog := region.NewCatalog()
	resolver := region.NewResolver(catalog)
	deduper := dedupe.NewDeduplicator(cfg.Generation.TitleSimilarityThreshold, logger)
	profileSvc := profile.NewService(storeSvc, cacheSvc, catalog, logger)
	gen := generator.New(resolver, modelManager, deduper, storeSvc, cacheSvc, logger)

	srv := server.New(cfg.Server.Host, cfg.Server.Port, server.Deps{
		Generator:   gen,
		Profiles:    profileSvc,
		Resolver:    resolver,
		StorePing:   storeSvc.Ping,
		ModelStatus: modelManager.Status,
	}, logger)

	return &Container{
		Config:   cfg,
		Logger:   logger,
		Server:   srv,
		cacheSvc: cacheSvc,
		storeSvc: storeSvc,
	}, nil
}
