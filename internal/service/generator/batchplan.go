package generator

import (
	"context"
	stderrors "errors"
	"fmt"
	"sort"

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

// ClusterPlanner groups a batch of scripts into filming clusters.
type ClusterPlanner interface {
	PlanClusters(ctx context.Context, req *domain.BatchPlanRequest) (*domain.BatchPlanResult, error)
}

// GenerateBatchPlan asks the model planner for clusters and falls back to
// the tone heuristic when the model output is unusable. The heuristic
// never fails, so a valid request always yields a plan.
func (g *Generator) GenerateBatchPlan(ctx context.Context, req *domain.BatchPlanRequest) (*domain.BatchPlanResult, error) {
	if err := validateBatchPlanRequest(req); err != nil {
		return nil, err
	}

	modelPlanner := &ModelPlanner{models: g.models}
	result, err := modelPlanner.PlanClusters(ctx, req)
	if err != nil {
		if !isRecoverablePlanError(err) {
			return nil, err
		}
		g.logger.Warn("Model planner failed, using heuristic clustering",
			zap.String("project_id", req.ProjectID),
			zap.Error(err))
		result, err = (&HeuristicPlanner{}).PlanClusters(ctx, req)
		if err != nil {
			return nil, err
		}
	}

	rec, err := store.NewRecord(uuid.NewString(), req.ProjectID, result)
	if err != nil {
		return nil, err
	}
	if err := g.store.Create(ctx, store.CollectionBatchPlans, rec); err != nil {
		return nil, err
	}

	g.logger.Info("Batch plan generated",
		zap.String("project_id", req.ProjectID),
		zap.Int("clusters", len(result.Clusters)),
		zap.String("strategy", result.Strategy))
	return result, nil
}

// isRecoverablePlanError reports whether the heuristic should take over.
// Malformed output and upstream failures are recoverable; anything else
// (cancellation, store errors) is not.
func isRecoverablePlanError(err error) bool {
	var parseErr *errors.ParseError
	var upstreamErr *errors.UpstreamError
	var validationErr *errors.ValidationError
	return stderrors.As(err, &parseErr) || stderrors.As(err, &upstreamErr) || stderrors.As(err, &validationErr)
}

// ModelPlanner clusters scripts with the precise model preset and
// rejects plans that do not cover every script exactly once.
type ModelPlanner struct {
	models ModelClient
}

func (p *ModelPlanner) PlanClusters(ctx context.Context, req *domain.BatchPlanRequest) (*domain.BatchPlanResult, error) {
	clusterScripts := make([]prompt.ClusterScript, 0, len(req.Scripts))
	for _, s := range req.Scripts {
		clusterScripts = append(clusterScripts, prompt.ClusterScript{
			ID:           s.ID,
			Title:        s.Title,
			Tone:         s.Tone,
			EstimatedSec: s.EstimatedSec,
		})
	}

	promptText := prompt.BuildClusterPrompt(prompt.ClusterPromptVars{
		Profile: req.Profile,
		Scripts: clusterScripts,
	})

	var payload struct {
		Clusters []domain.FilmingCluster `json:"clusters"`
	}
	meta, err := p.models.GenerateJSON(ctx, promptText, ai.PresetPrecise, &payload, nil)
	if err != nil {
		return nil, err
	}

	if err := validateClusterCoverage(payload.Clusters, req.Scripts); err != nil {
		return nil, err
	}

	return &domain.BatchPlanResult{
		Clusters: payload.Clusters,
		Strategy: "model",
		Provider: meta.Provider,
		Model:    meta.Model,
	}, nil
}

// validateClusterCoverage checks that every script id appears in exactly
// one cluster and no cluster invents ids.
func validateClusterCoverage(clusters []domain.FilmingCluster, scripts []*domain.Script) error {
	known := make(map[string]bool, len(scripts))
	for _, s := range scripts {
		known[s.ID] = true
	}

	seen := make(map[string]bool, len(scripts))
	for _, cluster := range clusters {
		for _, id := range cluster.ScriptIDs {
			if !known[id] {
				return errors.NewValidationError("cluster references unknown script", "script_ids", id)
			}
			if seen[id] {
				return errors.NewValidationError("script assigned to multiple clusters", "script_ids", id)
			}
			seen[id] = true
		}
	}
	if len(seen) != len(known) {
		return errors.NewValidationError(
			fmt.Sprintf("clusters cover %d of %d scripts", len(seen), len(known)),
			"clusters", len(clusters))
	}
	return nil
}

// HeuristicPlanner groups scripts by tone and chunks each tone group into
// fixed-size clusters. Deterministic and dependency-free.
type HeuristicPlanner struct{}

func (p *HeuristicPlanner) PlanClusters(_ context.Context, req *domain.BatchPlanRequest) (*domain.BatchPlanResult, error) {
	byTone := make(map[string][]*domain.Script)
	for _, s := range req.Scripts {
		byTone[s.Tone] = append(byTone[s.Tone], s)
	}

	tones := make([]string, 0, len(byTone))
	for tone := range byTone {
		tones = append(tones, tone)
	}
	sort.Strings(tones)

	size := constants.Generation.FallbackClusterSize
	var clusters []domain.FilmingCluster
	for _, tone := range tones {
		group := byTone[tone]
		for start := 0; start < len(group); start += size {
			chunk := group[start:util.Min(start+size, len(group))]
			ids := make([]string, 0, len(chunk))
			for _, s := range chunk {
				ids = append(ids, s.ID)
			}
			label := tone
			if label == "" {
				label = "general"
			}
			clusters = append(clusters, domain.FilmingCluster{
				Name:             fmt.Sprintf("%s session %d", label, start/size+1),
				Description:      fmt.Sprintf("Scripts sharing a %s tone, batched for one setup", label),
				ScriptIDs:        ids,
				EnergyLevel:      energyForTone(label),
				EstimatedMinutes: len(chunk) * 10,
			})
		}
	}

	return &domain.BatchPlanResult{
		Clusters: clusters,
		Strategy: "heuristic",
	}, nil
}

func energyForTone(tone string) string {
	switch tone {
	case "humor", "emotional":
		return "high"
	case "calming":
		return "low"
	default:
		return "medium"
	}
}

func validateBatchPlanRequest(req *domain.BatchPlanRequest) error {
	if req == nil || req.Profile == nil {
		return errors.NewValidationError("profile is required", "profile", nil)
	}
	if req.ProjectID == "" {
		return errors.NewValidationError("project id is required", "project_id", req.ProjectID)
	}
	if len(req.Scripts) == 0 {
		return errors.NewValidationError("at least one script is required", "scripts", nil)
	}
	for i, s := range req.Scripts {
		if s == nil || s.ID == "" {
			return errors.NewValidationError("script id is required", "scripts", i)
		}
	}
	return nil
}
