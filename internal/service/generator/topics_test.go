package generator

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/AndrewK67/shorts-studio/internal/domain"
	"github.com/AndrewK67/shorts-studio/internal/service/store"
	apperrors "github.com/AndrewK67/shorts-studio/pkg/errors"
)

func topicRequest(count int) *domain.TopicGenerationRequest {
	return &domain.TopicGenerationRequest{
		ProjectID: "project-1",
		Profile:   testProfile(),
		Count:     count,
		Month:     11,
		Year:      2026,
	}
}

func candidateJSON(cands []domain.TopicCandidate) string {
	data, _ := json.Marshal(cands)
	return string(data)
}

func TestGenerateTopicsAcceptsValidCandidates(t *testing.T) {
	model := &fakeModel{payload: candidateJSON([]domain.TopicCandidate{
		{Title: "3 budget apps worth paying for", Hook: "Stop using spreadsheets", CoreValue: "save time", Tone: "educational"},
		{Title: "why your emergency fund is too small", Hook: "One number changes everything", CoreValue: "security", Tone: "educational"},
	})}
	st := newMemStore()
	gen := newTestGenerator(model, st)

	result, err := gen.GenerateTopics(context.Background(), topicRequest(2))
	if err != nil {
		t.Fatalf("GenerateTopics: %v", err)
	}
	if result.Accepted != 2 || result.Rejected != 0 {
		t.Errorf("accepted/rejected = %d/%d", result.Accepted, result.Rejected)
	}
	if result.Provider != "gemini" {
		t.Errorf("provider = %q", result.Provider)
	}

	for i, topic := range result.Topics {
		if topic.ID == "" {
			t.Error("topic missing ID")
		}
		if topic.ProjectID != "project-1" {
			t.Errorf("topic project = %q", topic.ProjectID)
		}
		if topic.OrderIndex != i {
			t.Errorf("order index = %d at position %d", topic.OrderIndex, i)
		}
	}

	persisted, err := gen.Topics(context.Background(), "project-1")
	if err != nil {
		t.Fatalf("Topics: %v", err)
	}
	if len(persisted) != 2 {
		t.Errorf("persisted %d topics", len(persisted))
	}
}

func TestGenerateTopicsDropsInvalidAndDuplicateCandidates(t *testing.T) {
	model := &fakeModel{payload: candidateJSON([]domain.TopicCandidate{
		{Title: "weekly meal prep for night shifts", Hook: "Your freezer is the answer", CoreValue: "time"},
		{Title: "no hook here", CoreValue: "value"},
		{Title: "Weekly Meal Prep for Night Shifts", Hook: "dup", CoreValue: "dup"},
	})}
	st := newMemStore()
	gen := newTestGenerator(model, st)

	result, err := gen.GenerateTopics(context.Background(), topicRequest(3))
	if err != nil {
		t.Fatalf("GenerateTopics: %v", err)
	}
	if result.Accepted != 1 {
		t.Errorf("accepted = %d", result.Accepted)
	}
	if result.Rejected != 2 {
		t.Errorf("rejected = %d", result.Rejected)
	}
}

func TestGenerateTopicsRejectsNearDuplicateOfHistory(t *testing.T) {
	st := newMemStore()
	prior := &domain.Topic{ID: "t-0", ProjectID: "project-1", TopicCandidate: domain.TopicCandidate{
		Title: "how i gained 10k followers in 30 days", Hook: "h", CoreValue: "v",
	}}
	rec, _ := store.NewRecord(prior.ID, prior.ProjectID, prior)
	_ = st.Create(context.Background(), store.CollectionTopics, rec)

	model := &fakeModel{payload: candidateJSON([]domain.TopicCandidate{
		{Title: "how i gained 10k followers in 60 days", Hook: "h", CoreValue: "v"},
	})}
	gen := newTestGenerator(model, st)

	result, err := gen.GenerateTopics(context.Background(), topicRequest(1))
	if err != nil {
		t.Fatalf("GenerateTopics: %v", err)
	}
	if result.Accepted != 0 || result.Rejected != 1 {
		t.Errorf("accepted/rejected = %d/%d", result.Accepted, result.Rejected)
	}
}

func TestGenerateTopicsPromptCarriesPriorTitles(t *testing.T) {
	st := newMemStore()
	prior := &domain.Topic{ID: "t-0", ProjectID: "project-1", TopicCandidate: domain.TopicCandidate{
		Title: "the 50/30/20 rule explained", Hook: "h", CoreValue: "v",
	}}
	rec, _ := store.NewRecord(prior.ID, prior.ProjectID, prior)
	_ = st.Create(context.Background(), store.CollectionTopics, rec)

	model := &fakeModel{payload: "[]"}
	gen := newTestGenerator(model, st)

	if _, err := gen.GenerateTopics(context.Background(), topicRequest(5)); err != nil {
		t.Fatalf("GenerateTopics: %v", err)
	}
	if len(model.prompts) != 1 {
		t.Fatalf("model called %d times", len(model.prompts))
	}
	if !strings.Contains(model.prompts[0], "the 50/30/20 rule explained") {
		t.Error("prompt should list the project's prior titles")
	}
}

func TestGenerateTopicsDefaultsToCurrentMonth(t *testing.T) {
	model := &fakeModel{payload: "[]"}
	gen := newTestGenerator(model, newMemStore())

	req := topicRequest(5)
	req.Month = 0
	req.Year = 0
	if _, err := gen.GenerateTopics(context.Background(), req); err != nil {
		t.Fatalf("GenerateTopics: %v", err)
	}
	if req.Month < 1 || req.Month > 12 {
		t.Errorf("defaulted month = %d", req.Month)
	}
	if req.Year < 2026 {
		t.Errorf("defaulted year = %d", req.Year)
	}
}

func TestGenerateTopicsPropagatesModelFailure(t *testing.T) {
	model := &fakeModel{err: apperrors.NewUpstreamError("generation failed", "gemini", nil)}
	gen := newTestGenerator(model, newMemStore())

	_, err := gen.GenerateTopics(context.Background(), topicRequest(5))
	var upstream *apperrors.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
}

func TestGenerateTopicsValidation(t *testing.T) {
	gen := newTestGenerator(&fakeModel{payload: "[]"}, newMemStore())

	cases := []struct {
		name   string
		mutate func(*domain.TopicGenerationRequest)
	}{
		{"nil profile", func(r *domain.TopicGenerationRequest) { r.Profile = nil }},
		{"empty project", func(r *domain.TopicGenerationRequest) { r.ProjectID = "" }},
		{"zero count", func(r *domain.TopicGenerationRequest) { r.Count = 0 }},
		{"excessive count", func(r *domain.TopicGenerationRequest) { r.Count = 500 }},
		{"bad month", func(r *domain.TopicGenerationRequest) { r.Month = 13 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := topicRequest(5)
			tc.mutate(req)
			_, err := gen.GenerateTopics(context.Background(), req)
			var verr *apperrors.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}
