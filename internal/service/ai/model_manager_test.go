package ai

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/zap"

	apperrors "github.com/AndrewK67/shorts-studio/pkg/errors"
)

type fakeProvider struct {
	name  string
	text  string
	err   error
	calls int
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Generate(ctx context.Context, model, prompt string, preset ModelPreset, opts *GenerateOptions) (*ProviderResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &ProviderResult{Text: f.text, Model: model}, nil
}

func (f *fakeProvider) Ping(ctx context.Context) error { return nil }

func newTestManager(primary, fallback *fakeProvider, enableFallback bool) *ModelManager {
	var fb JSONProvider
	if fallback != nil {
		fb = fallback
	}
	return NewModelManager(ModelManagerOptions{
		Primary:        primary,
		Fallback:       fb,
		PrimaryModel:   "primary-model",
		FallbackModel:  "fallback-model",
		EnableFallback: enableFallback,
	}, zap.NewNop())
}

type payload struct {
	Title string `json:"title"`
}

func TestGenerateJSONDecodesPrimaryResult(t *testing.T) {
	primary := &fakeProvider{name: "gemini", text: `{"title": "Morning routines"}`}
	mgr := newTestManager(primary, nil, false)

	var out payload
	meta, err := mgr.GenerateJSON(context.Background(), "prompt", PresetCreative, &out, nil)
	if err != nil {
		t.Fatalf("GenerateJSON: %v", err)
	}
	if out.Title != "Morning routines" {
		t.Errorf("decoded title = %q", out.Title)
	}
	if meta.Provider != "gemini" || meta.Model != "primary-model" {
		t.Errorf("metadata = %+v", meta)
	}
	if meta.UsedFallback {
		t.Error("primary success should not be marked as fallback")
	}
}

func TestGenerateJSONStripsCodeFences(t *testing.T) {
	primary := &fakeProvider{name: "gemini", text: "```json\n{\"title\": \"Fenced\"}\n```"}
	mgr := newTestManager(primary, nil, false)

	var out payload
	if _, err := mgr.GenerateJSON(context.Background(), "prompt", PresetCreative, &out, nil); err != nil {
		t.Fatalf("GenerateJSON: %v", err)
	}
	if out.Title != "Fenced" {
		t.Errorf("decoded title = %q", out.Title)
	}
}

func TestGenerateJSONFallsBackOnServiceFailure(t *testing.T) {
	primary := &fakeProvider{name: "gemini", err: fmt.Errorf("upstream status 503 ServiceUnavailable")}
	fallback := &fakeProvider{name: "openai", text: `{"title": "Backup plan"}`}
	mgr := newTestManager(primary, fallback, true)

	var out payload
	meta, err := mgr.GenerateJSON(context.Background(), "prompt", PresetCreative, &out, nil)
	if err != nil {
		t.Fatalf("GenerateJSON: %v", err)
	}
	if !meta.UsedFallback {
		t.Error("expected fallback to be used")
	}
	if meta.Provider != "openai" || meta.Model != "fallback-model" {
		t.Errorf("metadata = %+v", meta)
	}
	if out.Title != "Backup plan" {
		t.Errorf("decoded title = %q", out.Title)
	}
}

func TestGenerateJSONFallsBackOnRateLimit(t *testing.T) {
	primary := &fakeProvider{name: "gemini", err: fmt.Errorf("RESOURCE_EXHAUSTED: quota exceeded")}
	fallback := &fakeProvider{name: "openai", text: `{"title": "ok"}`}
	mgr := newTestManager(primary, fallback, true)

	var out payload
	meta, err := mgr.GenerateJSON(context.Background(), "prompt", PresetCreative, &out, nil)
	if err != nil {
		t.Fatalf("GenerateJSON: %v", err)
	}
	if !meta.UsedFallback {
		t.Error("expected fallback on rate limit")
	}
}

func TestGenerateJSONDoesNotFallBackOnClientError(t *testing.T) {
	primary := &fakeProvider{name: "gemini", err: fmt.Errorf("invalid request: status 400")}
	fallback := &fakeProvider{name: "openai", text: `{"title": "ok"}`}
	mgr := newTestManager(primary, fallback, true)

	var out payload
	_, err := mgr.GenerateJSON(context.Background(), "prompt", PresetCreative, &out, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	var upstream *apperrors.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %T", err)
	}
	if upstream.Provider != "gemini" {
		t.Errorf("provider = %q", upstream.Provider)
	}
	if fallback.calls != 0 {
		t.Errorf("fallback called %d times for non-transient failure", fallback.calls)
	}
}

func TestGenerateJSONSurfacesParseError(t *testing.T) {
	primary := &fakeProvider{name: "gemini", text: "Sure! Here are some ideas for you."}
	mgr := newTestManager(primary, nil, false)

	var out payload
	_, err := mgr.GenerateJSON(context.Background(), "prompt", PresetCreative, &out, nil)
	if err == nil {
		t.Fatal("expected error for non-JSON payload")
	}
	var parseErr *apperrors.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %T", err)
	}
	if parseErr.Raw == "" {
		t.Error("parse error should carry the raw response")
	}
}

func TestGenerateJSONNoFallbackConfigured(t *testing.T) {
	primary := &fakeProvider{name: "gemini", err: fmt.Errorf("upstream status 503")}
	mgr := newTestManager(primary, nil, false)

	var out payload
	_, err := mgr.GenerateJSON(context.Background(), "prompt", PresetCreative, &out, nil)
	var upstream *apperrors.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
}

func TestPresetConfigs(t *testing.T) {
	creative := GetPresetConfig(PresetCreative)
	precise := GetPresetConfig(PresetPrecise)
	if creative.Temperature <= precise.Temperature {
		t.Errorf("creative temperature %v should exceed precise %v", creative.Temperature, precise.Temperature)
	}
	unknown := GetPresetConfig(ModelPreset("nope"))
	balanced := GetPresetConfig(PresetBalanced)
	if unknown != balanced {
		t.Error("unknown preset should fall back to balanced")
	}
}
