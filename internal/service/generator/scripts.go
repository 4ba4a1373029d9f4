package generator

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/AndrewK67/shorts-studio/internal/constants"
	"github.com/AndrewK67/shorts-studio/internal/domain"
	"github.com/AndrewK67/shorts-studio/internal/prompt"
	"github.com/AndrewK67/shorts-studio/internal/service/ai"
	"github.com/AndrewK67/shorts-studio/internal/service/store"
	"github.com/AndrewK67/shorts-studio/pkg/errors"
)

// GenerateScripts writes one script per topic, fanning the model calls
// out over a bounded worker pool. A failed script fails the whole batch;
// nothing is persisted in that case.
func (g *Generator) GenerateScripts(ctx context.Context, req *domain.ScriptGenerationRequest) (*domain.ScriptGenerationResult, error) {
	if err := validateScriptRequest(req); err != nil {
		return nil, err
	}

	promptCtx := g.resolver.BuildPromptContext(
		req.Profile.CreatorCountry, req.Profile.TargetCountry,
		req.Month, req.Year, nil)

	scripts := make([]*domain.Script, len(req.Topics))
	metas := make([]*ai.GenerateMetadata, len(req.Topics))

	p := pool.New().WithContext(ctx).WithMaxGoroutines(constants.Generation.ScriptWorkers)
	for i, topic := range req.Topics {
		p.Go(func(ctx context.Context) error {
			promptText := prompt.BuildScriptPrompt(prompt.ScriptPromptVars{
				Profile: req.Profile,
				Context: promptCtx,
				Topic:   topic,
			})

			var script domain.Script
			meta, err := g.models.GenerateJSON(ctx, promptText, ai.PresetCreative, &script, nil)
			if err != nil {
				return fmt.Errorf("script for topic %s: %w", topic.ID, err)
			}

			script.ID = uuid.NewString()
			script.TopicID = topic.ID
			script.ProjectID = req.ProjectID
			scripts[i] = &script
			metas[i] = meta
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	recs := make([]store.Record, 0, len(scripts))
	for _, script := range scripts {
		rec, err := store.NewRecord(script.ID, req.ProjectID, script)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	if err := g.store.CreateMany(ctx, store.CollectionScripts, recs); err != nil {
		return nil, err
	}

	result := &domain.ScriptGenerationResult{Scripts: scripts}
	for _, meta := range metas {
		if meta != nil {
			result.Provider = meta.Provider
			result.Model = meta.Model
			break
		}
	}

	g.logger.Info("Scripts generated",
		zap.String("project_id", req.ProjectID),
		zap.Int("count", len(scripts)),
		zap.String("provider", result.Provider))
	return result, nil
}

// Scripts returns a project's persisted scripts in insertion order.
func (g *Generator) Scripts(ctx context.Context, projectID string) ([]*domain.Script, error) {
	recs, err := g.store.FindByParentID(ctx, store.CollectionScripts, projectID)
	if err != nil {
		return nil, err
	}
	scripts := make([]*domain.Script, 0, len(recs))
	for _, rec := range recs {
		var s domain.Script
		if err := rec.Decode(&s); err != nil {
			return nil, err
		}
		scripts = append(scripts, &s)
	}
	return scripts, nil
}

func validateScriptRequest(req *domain.ScriptGenerationRequest) error {
	if req == nil || req.Profile == nil {
		return errors.NewValidationError("profile is required", "profile", nil)
	}
	if req.ProjectID == "" {
		return errors.NewValidationError("project id is required", "project_id", req.ProjectID)
	}
	if len(req.Topics) == 0 {
		return errors.NewValidationError("at least one topic is required", "topics", nil)
	}
	if len(req.Topics) > constants.Generation.MaxScriptsPerBatch {
		return errors.NewValidationError(
			fmt.Sprintf("at most %d scripts per batch", constants.Generation.MaxScriptsPerBatch),
			"topics", len(req.Topics))
	}
	if req.Month < 1 || req.Month > 12 {
		return errors.NewValidationError("month must be between 1 and 12", "month", req.Month)
	}
	for i, topic := range req.Topics {
		if topic == nil || topic.ID == "" {
			return errors.NewValidationError("topic id is required", "topics", i)
		}
	}
	return nil
}
