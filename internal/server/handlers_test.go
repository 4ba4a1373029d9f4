package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/AndrewK67/shorts-studio/internal/domain"
	"github.com/AndrewK67/shorts-studio/internal/region"
	apperrors "github.com/AndrewK67/shorts-studio/pkg/errors"
)

type fakeGenerator struct {
	topicResult  *domain.TopicGenerationResult
	scriptResult *domain.ScriptGenerationResult
	planResult   *domain.BatchPlanResult
	topics       []*domain.Topic
	scripts      []*domain.Script
	err          error

	lastTopicReq  *domain.TopicGenerationRequest
	lastScriptReq *domain.ScriptGenerationRequest
	lastPlanReq   *domain.BatchPlanRequest
}

func (f *fakeGenerator) GenerateTopics(ctx context.Context, req *domain.TopicGenerationRequest) (*domain.TopicGenerationResult, error) {
	f.lastTopicReq = req
	return f.topicResult, f.err
}

func (f *fakeGenerator) GenerateScripts(ctx context.Context, req *domain.ScriptGenerationRequest) (*domain.ScriptGenerationResult, error) {
	f.lastScriptReq = req
	return f.scriptResult, f.err
}

func (f *fakeGenerator) GenerateBatchPlan(ctx context.Context, req *domain.BatchPlanRequest) (*domain.BatchPlanResult, error) {
	f.lastPlanReq = req
	return f.planResult, f.err
}

func (f *fakeGenerator) Topics(ctx context.Context, projectID string) ([]*domain.Topic, error) {
	return f.topics, nil
}

func (f *fakeGenerator) Scripts(ctx context.Context, projectID string) ([]*domain.Script, error) {
	return f.scripts, nil
}

type fakeProfiles struct {
	profiles map[string]*domain.CreatorProfile
	saveErr  error
}

func (f *fakeProfiles) Save(ctx context.Context, p *domain.CreatorProfile) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if p.ID == "" {
		p.ID = "generated-id"
	}
	f.profiles[p.ID] = p
	return nil
}

func (f *fakeProfiles) Get(ctx context.Context, id string) (*domain.CreatorProfile, error) {
	return f.profiles[id], nil
}

func (f *fakeProfiles) Delete(ctx context.Context, id string) error {
	delete(f.profiles, id)
	return nil
}

func newTestServer(gen *fakeGenerator, profiles *fakeProfiles) *Server {
	if profiles == nil {
		profiles = &fakeProfiles{profiles: map[string]*domain.CreatorProfile{}}
	}
	return New("127.0.0.1", 0, Deps{
		Generator: gen,
		Profiles:  profiles,
		Resolver:  region.NewResolver(region.NewCatalog()),
	}, zap.NewNop())
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func seedProfile() (*fakeProfiles, *domain.CreatorProfile) {
	p := &domain.CreatorProfile{
		ID:             "profile-1",
		Niche:          "gardening",
		ToneMix:        []domain.ToneShare{{Tone: "calming", Percent: 100}},
		CreatorCountry: "US",
		TargetCountry:  "AU",
	}
	return &fakeProfiles{profiles: map[string]*domain.CreatorProfile{"profile-1": p}}, p
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(&fakeGenerator{}, nil)
	rec := doJSON(t, srv, http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %v", body["status"])
	}
}

func TestListRegions(t *testing.T) {
	srv := newTestServer(&fakeGenerator{}, nil)
	rec := doJSON(t, srv, http.MethodGet, "/api/v1/regions", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Regions []regionSummary `json:"regions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Regions) == 0 {
		t.Fatal("no regions listed")
	}
	foundUS := false
	for _, r := range body.Regions {
		if r.CountryCode == "US" {
			foundUS = true
			if r.Hemisphere != "northern" {
				t.Errorf("US hemisphere = %q", r.Hemisphere)
			}
		}
	}
	if !foundUS {
		t.Error("US missing from region list")
	}
}

func TestRegionHolidays(t *testing.T) {
	srv := newTestServer(&fakeGenerator{}, nil)

	rec := doJSON(t, srv, http.MethodGet, "/api/v1/regions/GB/holidays", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		CountryCode string           `json:"country_code"`
		Holidays    []domain.Holiday `json:"holidays"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.CountryCode != "GB" || len(body.Holidays) == 0 {
		t.Errorf("body = %+v", body)
	}

	rec = doJSON(t, srv, http.MethodGet, "/api/v1/regions/XX/holidays", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown region status = %d", rec.Code)
	}
}

func TestSaveAndGetProfile(t *testing.T) {
	srv := newTestServer(&fakeGenerator{}, nil)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/profiles", map[string]any{
		"niche":    "gardening",
		"tone_mix": []map[string]any{{"tone": "calming", "percent": 100}},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("save status = %d, body %s", rec.Code, rec.Body.String())
	}
	var saved domain.CreatorProfile
	if err := json.Unmarshal(rec.Body.Bytes(), &saved); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if saved.ID == "" {
		t.Fatal("saved profile has no ID")
	}

	rec = doJSON(t, srv, http.MethodGet, "/api/v1/profiles/"+saved.ID, nil)
	if rec.Code != http.StatusOK {
		t.Errorf("get status = %d", rec.Code)
	}

	rec = doJSON(t, srv, http.MethodGet, "/api/v1/profiles/missing", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing profile status = %d", rec.Code)
	}
}

func TestGenerateTopicsEndpoint(t *testing.T) {
	profiles, p := seedProfile()
	gen := &fakeGenerator{topicResult: &domain.TopicGenerationResult{
		Requested: 5, Accepted: 4, Rejected: 1, Provider: "gemini", Model: "m",
	}}
	srv := newTestServer(gen, profiles)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/topics/generate", map[string]any{
		"project_id": "project-1",
		"profile_id": "profile-1",
		"count":      5,
		"month":      11,
		"year":       2026,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if gen.lastTopicReq == nil || gen.lastTopicReq.Profile != p {
		t.Error("handler did not pass the loaded profile through")
	}
	if gen.lastTopicReq.Count != 5 || gen.lastTopicReq.Month != 11 {
		t.Errorf("request = %+v", gen.lastTopicReq)
	}
}

func TestGenerateTopicsUnknownProfile(t *testing.T) {
	srv := newTestServer(&fakeGenerator{}, nil)
	rec := doJSON(t, srv, http.MethodPost, "/api/v1/topics/generate", map[string]any{
		"project_id": "project-1",
		"profile_id": "missing",
		"count":      5,
	})
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestGenerateTopicsErrorMapping(t *testing.T) {
	profiles, _ := seedProfile()

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", apperrors.NewValidationError("count must be positive", "count", 0), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"parse", apperrors.NewParseError("no JSON found", "raw", nil), http.StatusBadGateway, "PARSE_ERROR"},
		{"upstream", apperrors.NewUpstreamError("generation failed", "gemini", nil), http.StatusBadGateway, "UPSTREAM_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := newTestServer(&fakeGenerator{err: tc.err}, profiles)
			rec := doJSON(t, srv, http.MethodPost, "/api/v1/topics/generate", map[string]any{
				"project_id": "p", "profile_id": "profile-1", "count": 5,
			})
			if rec.Code != tc.status {
				t.Errorf("status = %d, want %d", rec.Code, tc.status)
			}
			var body errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Error.Code != tc.code {
				t.Errorf("code = %q, want %q", body.Error.Code, tc.code)
			}
		})
	}
}

func TestGenerateScriptsFiltersTopics(t *testing.T) {
	profiles, _ := seedProfile()
	gen := &fakeGenerator{
		scriptResult: &domain.ScriptGenerationResult{},
		topics: []*domain.Topic{
			{ID: "t1"}, {ID: "t2"}, {ID: "t3"},
		},
	}
	srv := newTestServer(gen, profiles)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/scripts/generate", map[string]any{
		"project_id": "project-1",
		"profile_id": "profile-1",
		"topic_ids":  []string{"t1", "t3"},
		"month":      11,
		"year":       2026,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if len(gen.lastScriptReq.Topics) != 2 {
		t.Fatalf("passed %d topics", len(gen.lastScriptReq.Topics))
	}
	if gen.lastScriptReq.Topics[0].ID != "t1" || gen.lastScriptReq.Topics[1].ID != "t3" {
		t.Errorf("topic order = %s, %s", gen.lastScriptReq.Topics[0].ID, gen.lastScriptReq.Topics[1].ID)
	}
}

func TestGenerateBatchPlanEndpoint(t *testing.T) {
	profiles, _ := seedProfile()
	gen := &fakeGenerator{
		planResult: &domain.BatchPlanResult{Strategy: "heuristic"},
		scripts:    []*domain.Script{{ID: "s1"}, {ID: "s2"}},
	}
	srv := newTestServer(gen, profiles)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/batch-plan/generate", map[string]any{
		"project_id": "project-1",
		"profile_id": "profile-1",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if len(gen.lastPlanReq.Scripts) != 2 {
		t.Errorf("passed %d scripts", len(gen.lastPlanReq.Scripts))
	}

	var body domain.BatchPlanResult
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Strategy != "heuristic" {
		t.Errorf("strategy = %q", body.Strategy)
	}
}

func TestInvalidJSONBody(t *testing.T) {
	srv := newTestServer(&fakeGenerator{}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/topics/generate", bytes.NewBufferString("{nope"))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d", rec.Code)
	}
}
