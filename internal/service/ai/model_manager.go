package ai

import (
	"context"
	"regexp"

	"go.uber.org/zap"

	"github.com/AndrewK67/shorts-studio/internal/constants"
	"github.com/AndrewK67/shorts-studio/internal/prompt"
	"github.com/AndrewK67/shorts-studio/internal/util"
	apperrors "github.com/AndrewK67/shorts-studio/pkg/errors"
)

var (
	serviceFailureRe = regexp.MustCompile(`(?i)(ServiceUnavailable|Internal Server Error|Bad Gateway|"code":\s*5\d\d|status[: ]+5\d\d)`)
	rateLimitRe      = regexp.MustCompile(`(?i)(RateLimit|Too Many Requests|RESOURCE_EXHAUSTED|quota|"code":\s*429|status[: ]+429)`)
)

// ModelManager routes JSON generation to a primary provider with an
// optional fallback, guarded by a circuit breaker.
type ModelManager struct {
	primary        JSONProvider
	fallback       JSONProvider
	primaryModel   string
	fallbackModel  string
	enableFallback bool
	breaker        *util.CircuitBreaker
	logger         *zap.Logger
}

type ModelManagerOptions struct {
	Primary        JSONProvider
	Fallback       JSONProvider
	PrimaryModel   string
	FallbackModel  string
	EnableFallback bool
}

func NewModelManager(opts ModelManagerOptions, logger *zap.Logger) *ModelManager {
	m := &ModelManager{
		primary:        opts.Primary,
		fallback:       opts.Fallback,
		primaryModel:   opts.PrimaryModel,
		fallbackModel:  opts.FallbackModel,
		enableFallback: opts.EnableFallback && opts.Fallback != nil,
		logger:         logger,
	}

	cb := constants.CircuitBreakerConfig
	m.breaker = util.NewCircuitBreaker(
		cb.FailureThreshold,
		cb.ResetTimeout,
		cb.HealthCheckInterval,
		func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), cb.HealthCheckTimeout)
			defer cancel()
			return opts.Primary.Ping(ctx) == nil
		},
		logger,
	)
	return m
}

// GenerateJSON runs the prompt against the primary provider, falls back on
// transient upstream failures, and decodes the JSON payload into dest.
func (m *ModelManager) GenerateJSON(ctx context.Context, promptText string, preset ModelPreset, dest any, opts *GenerateOptions) (*GenerateMetadata, error) {
	if opts == nil {
		opts = &GenerateOptions{}
	}
	opts.JSONMode = true

	model := opts.Model
	if model == "" {
		model = m.primaryModel
	}

	if !m.breaker.CanExecute() {
		if m.enableFallback {
			m.logger.Warn("Primary provider circuit is open, using fallback",
				zap.String("provider", m.primary.Name()))
			return m.generateWithFallback(ctx, promptText, preset, dest, opts)
		}
		return nil, apperrors.NewUpstreamError("model provider circuit is open", m.primary.Name(), nil)
	}

	result, err := m.primary.Generate(ctx, model, promptText, preset, opts)
	if err != nil {
		m.recordPrimaryFailure(err)
		if m.enableFallback && m.shouldFallback(err) {
			m.logger.Warn("Primary provider failed, switching to fallback",
				zap.String("provider", m.primary.Name()),
				zap.Error(err))
			return m.generateWithFallback(ctx, promptText, preset, dest, opts)
		}
		return nil, apperrors.NewUpstreamError("generation failed", m.primary.Name(), err)
	}
	m.breaker.RecordSuccess()

	if err := prompt.Decode(result.Text, dest); err != nil {
		m.logger.Warn("Model response did not decode",
			zap.String("provider", m.primary.Name()),
			zap.String("response_head", util.TruncateString(result.Text, 200)))
		return nil, err
	}
	return &GenerateMetadata{Provider: m.primary.Name(), Model: result.Model}, nil
}

func (m *ModelManager) generateWithFallback(ctx context.Context, promptText string, preset ModelPreset, dest any, opts *GenerateOptions) (*GenerateMetadata, error) {
	result, err := m.fallback.Generate(ctx, m.fallbackModel, promptText, preset, opts)
	if err != nil {
		return nil, apperrors.NewUpstreamError("fallback generation failed", m.fallback.Name(), err)
	}
	if err := prompt.Decode(result.Text, dest); err != nil {
		return nil, err
	}
	return &GenerateMetadata{Provider: m.fallback.Name(), Model: result.Model, UsedFallback: true}, nil
}

func (m *ModelManager) recordPrimaryFailure(err error) {
	if rateLimitRe.MatchString(err.Error()) {
		// quota exhaustion clears slowly, hold the circuit open longer
		m.breaker.RecordFailure(constants.CircuitBreakerConfig.RateLimitTimeout)
		return
	}
	if serviceFailureRe.MatchString(err.Error()) {
		m.breaker.RecordFailure(0)
	}
}

func (m *ModelManager) shouldFallback(err error) bool {
	return serviceFailureRe.MatchString(err.Error()) || rateLimitRe.MatchString(err.Error())
}

// Status reports the circuit breaker state for health endpoints.
func (m *ModelManager) Status() util.CircuitBreakerStatus {
	return m.breaker.GetStatus()
}
