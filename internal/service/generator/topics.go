package generator

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AndrewK67/shorts-studio/internal/constants"
	"github.com/AndrewK67/shorts-studio/internal/domain"
	"github.com/AndrewK67/shorts-studio/internal/prompt"
	"github.com/AndrewK67/shorts-studio/internal/service/ai"
	"github.com/AndrewK67/shorts-studio/internal/service/store"
	"github.com/AndrewK67/shorts-studio/internal/util"
	"github.com/AndrewK67/shorts-studio/pkg/errors"
)

// GenerateTopics runs the full topic pipeline: regional context, prompt,
// model call, validation, deduplication against the project's history,
// persistence. Accepting fewer topics than requested is a success.
func (g *Generator) GenerateTopics(ctx context.Context, req *domain.TopicGenerationRequest) (*domain.TopicGenerationResult, error) {
	if req != nil && req.Profile != nil && req.Month == 0 && req.Year == 0 {
		// default to the current month where the audience lives
		target := g.resolver.Catalog().Config(req.Profile.TargetCountry)
		now := util.InZone(time.Now(), target.Timezone)
		req.Month = int(now.Month())
		req.Year = now.Year()
	}
	if err := validateTopicRequest(req); err != nil {
		return nil, err
	}

	priorTitles, err := g.priorTitles(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}

	promptCtx := g.resolver.BuildPromptContext(
		req.Profile.CreatorCountry, req.Profile.TargetCountry,
		req.Month, req.Year, req.CustomEvents)

	promptText := prompt.BuildTopicPrompt(prompt.TopicPromptVars{
		Profile:     req.Profile,
		Context:     promptCtx,
		Count:       req.Count,
		ToneTargets: prompt.ToneTargets(req.Profile.ToneMix, req.Count),
		PriorTitles: priorTitles,
	})

	var candidates []domain.TopicCandidate
	meta, err := g.models.GenerateJSON(ctx, promptText, ai.PresetCreative, &candidates, nil)
	if err != nil {
		return nil, err
	}

	accepted := g.dedupe.FilterUnique(candidates, priorTitles)

	topics := make([]*domain.Topic, 0, len(accepted))
	recs := make([]store.Record, 0, len(accepted))
	titles := make([]string, 0, len(accepted))
	for i, cand := range accepted {
		cand.OrderIndex = i
		topic := &domain.Topic{
			ID:             uuid.NewString(),
			ProjectID:      req.ProjectID,
			TopicCandidate: cand,
		}
		rec, rerr := store.NewRecord(topic.ID, req.ProjectID, topic)
		if rerr != nil {
			return nil, rerr
		}
		topics = append(topics, topic)
		recs = append(recs, rec)
		titles = append(titles, topic.Title)
	}

	if err := g.store.CreateMany(ctx, store.CollectionTopics, recs); err != nil {
		return nil, err
	}

	if g.cache != nil {
		if cerr := g.cache.PushRecentTitles(ctx, req.ProjectID, titles); cerr != nil {
			g.logger.Warn("Recent title cache update failed",
				zap.String("project_id", req.ProjectID),
				zap.Error(cerr))
		}
	}

	g.logger.Info("Topics generated",
		zap.String("project_id", req.ProjectID),
		zap.Int("requested", req.Count),
		zap.Int("candidates", len(candidates)),
		zap.Int("accepted", len(topics)),
		zap.String("provider", meta.Provider),
		zap.Bool("used_fallback", meta.UsedFallback))

	return &domain.TopicGenerationResult{
		Topics:    topics,
		Requested: req.Count,
		Accepted:  len(topics),
		Rejected:  len(candidates) - len(topics),
		Provider:  meta.Provider,
		Model:     meta.Model,
	}, nil
}

// Topics returns a project's persisted topics in insertion order.
func (g *Generator) Topics(ctx context.Context, projectID string) ([]*domain.Topic, error) {
	recs, err := g.store.FindByParentID(ctx, store.CollectionTopics, projectID)
	if err != nil {
		return nil, err
	}
	topics := make([]*domain.Topic, 0, len(recs))
	for _, rec := range recs {
		var t domain.Topic
		if err := rec.Decode(&t); err != nil {
			return nil, err
		}
		topics = append(topics, &t)
	}
	return topics, nil
}

// priorTitles merges the cached recent titles with everything persisted
// for the project. Duplicates across the two sources are harmless; the
// deduplicator normalizes them anyway.
func (g *Generator) priorTitles(ctx context.Context, projectID string) ([]string, error) {
	var titles []string
	if g.cache != nil {
		cached, err := g.cache.RecentTitles(ctx, projectID)
		if err != nil {
			g.logger.Warn("Recent title cache read failed",
				zap.String("project_id", projectID),
				zap.Error(err))
		} else {
			titles = append(titles, cached...)
		}
	}

	existing, err := g.Topics(ctx, projectID)
	if err != nil {
		return nil, err
	}
	for _, t := range existing {
		titles = append(titles, t.Title)
	}
	return titles, nil
}

func validateTopicRequest(req *domain.TopicGenerationRequest) error {
	if req == nil || req.Profile == nil {
		return errors.NewValidationError("profile is required", "profile", nil)
	}
	if req.ProjectID == "" {
		return errors.NewValidationError("project id is required", "project_id", req.ProjectID)
	}
	if req.Count < 1 || req.Count > constants.Generation.MaxTopicsPerRequest {
		return errors.NewValidationError(
			fmt.Sprintf("count must be between 1 and %d", constants.Generation.MaxTopicsPerRequest),
			"count", req.Count)
	}
	if req.Month < 1 || req.Month > 12 {
		return errors.NewValidationError("month must be between 1 and 12", "month", req.Month)
	}
	if req.Year < 2000 || req.Year > 2100 {
		return errors.NewValidationError("year is out of range", "year", req.Year)
	}
	if len(req.CustomEvents) > constants.InputLimits.MaxCustomEvents {
		return errors.NewValidationError(
			fmt.Sprintf("at most %d custom events", constants.InputLimits.MaxCustomEvents),
			"custom_events", len(req.CustomEvents))
	}
	return nil
}
