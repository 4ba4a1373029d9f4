package generator

import (
	"context"

	"go.uber.org/zap"

	"github.com/AndrewK67/shorts-studio/internal/region"
	"github.com/AndrewK67/shorts-studio/internal/service/ai"
	"github.com/AndrewK67/shorts-studio/internal/service/cache"
	"github.com/AndrewK67/shorts-studio/internal/service/dedupe"
	"github.com/AndrewK67/shorts-studio/internal/service/store"
)

// ModelClient is the slice of the model manager the generator needs.
type ModelClient interface {
	GenerateJSON(ctx context.Context, prompt string, preset ai.ModelPreset, dest any, opts *ai.GenerateOptions) (*ai.GenerateMetadata, error)
}

// Generator runs the topic, script and batch-plan pipelines. All state
// lives in the request; a Generator is safe for concurrent use.
type Generator struct {
	resolver *region.Resolver
	models   ModelClient
	dedupe   *dedupe.Deduplicator
	store    store.Store
	cache    *cache.CacheService // nil when Redis is disabled
	logger   *zap.Logger
}

func New(resolver *region.Resolver, models ModelClient, dd *dedupe.Deduplicator, st store.Store, cs *cache.CacheService, logger *zap.Logger) *Generator {
	return &Generator{
		resolver: resolver,
		models:   models,
		dedupe:   dd,
		store:    st,
		cache:    cs,
		logger:   logger,
	}
}
