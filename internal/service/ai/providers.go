package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// ProviderResult is the raw output of a completion call.
type ProviderResult struct {
	Text  string
	Model string
}

// JSONProvider abstracts an LLM backend that can return structured JSON.
type JSONProvider interface {
	Name() string
	Generate(ctx context.Context, model, prompt string, preset ModelPreset, opts *GenerateOptions) (*ProviderResult, error)
	Ping(ctx context.Context) error
}

// GeminiProvider implements JSONProvider on the Gemini API.
type GeminiProvider struct {
	client *genai.Client
	logger *zap.Logger
}

func NewGeminiProvider(ctx context.Context, apiKey string, logger *zap.Logger) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiProvider{client: client, logger: logger}, nil
}

func (p *GeminiProvider) Name() string { return "gemini" }

func (p *GeminiProvider) Generate(ctx context.Context, model, prompt string, preset ModelPreset, opts *GenerateOptions) (*ProviderResult, error) {
	cfg := GetPresetConfig(preset)
	if opts != nil && opts.Overrides != nil {
		if opts.Overrides.Temperature > 0 {
			cfg.Temperature = opts.Overrides.Temperature
		}
		if opts.Overrides.TopP > 0 {
			cfg.TopP = opts.Overrides.TopP
		}
		if opts.Overrides.TopK > 0 {
			cfg.TopK = opts.Overrides.TopK
		}
		if opts.Overrides.MaxOutputTokens > 0 {
			cfg.MaxOutputTokens = opts.Overrides.MaxOutputTokens
		}
	}

	genCfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(cfg.Temperature),
		TopP:            genai.Ptr(cfg.TopP),
		TopK:            genai.Ptr(float32(cfg.TopK)),
		MaxOutputTokens: int32(cfg.MaxOutputTokens),
	}
	if opts != nil && opts.JSONMode {
		genCfg.ResponseMIMEType = "application/json"
	} else if cfg.ResponseMimeType != "" {
		genCfg.ResponseMIMEType = cfg.ResponseMimeType
	}

	resp, err := p.client.Models.GenerateContent(ctx, model, genai.Text(prompt), genCfg)
	if err != nil {
		return nil, fmt.Errorf("gemini generate failed: %w", err)
	}

	text := extractGeminiText(resp)
	if text == "" {
		return nil, fmt.Errorf("gemini returned empty response")
	}
	return &ProviderResult{Text: text, Model: model}, nil
}

func (p *GeminiProvider) Ping(ctx context.Context) error {
	_, err := p.client.Models.GenerateContent(ctx, "gemini-2.5-flash-lite", genai.Text("ping"), &genai.GenerateContentConfig{
		MaxOutputTokens: 8,
	})
	return err
}

func extractGeminiText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.Text != "" {
				sb.WriteString(part.Text)
			}
		}
	}
	return strings.TrimSpace(sb.String())
}

// OpenAIProvider implements JSONProvider on the OpenAI API.
type OpenAIProvider struct {
	client openai.Client
	logger *zap.Logger
}

func NewOpenAIProvider(apiKey string, logger *zap.Logger) *OpenAIProvider {
	return &OpenAIProvider{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		logger: logger,
	}
}

func (p *OpenAIProvider) Name() string { return "openai" }

func (p *OpenAIProvider) Generate(ctx context.Context, model, prompt string, preset ModelPreset, opts *GenerateOptions) (*ProviderResult, error) {
	cfg := GetOpenAIPresetConfig(preset)

	messages := []openai.ChatCompletionMessageParamUnion{}
	if opts != nil && opts.JSONMode {
		messages = append(messages, openai.SystemMessage("You are a JSON generator. Respond with valid JSON only. No prose, no markdown, no code fences."))
	}
	messages = append(messages, openai.UserMessage(prompt))

	params := openai.ChatCompletionNewParams{
		Model:               openai.ChatModel(model),
		Messages:            messages,
		Temperature:         openai.Float(float64(cfg.Temperature)),
		TopP:                openai.Float(float64(cfg.TopP)),
		MaxCompletionTokens: openai.Int(int64(cfg.MaxTokens)),
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai generate failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai returned no choices")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return nil, fmt.Errorf("openai returned empty response")
	}
	return &ProviderResult{Text: text, Model: model}, nil
}

func (p *OpenAIProvider) Ping(ctx context.Context) error {
	_, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:               openai.ChatModelGPT4_1Nano,
		Messages:            []openai.ChatCompletionMessageParamUnion{openai.UserMessage("ping")},
		MaxCompletionTokens: openai.Int(8),
	})
	return err
}
