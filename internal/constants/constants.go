package constants

import "time"

var CacheTTL = struct {
	RecentTitles    time.Duration
	CreatorProfile  time.Duration
	RegionalContext time.Duration
	GenerationRun   time.Duration
}{
	RecentTitles:    24 * time.Hour,
	CreatorProfile:  30 * time.Minute,
	RegionalContext: 60 * time.Minute,
	GenerationRun:   10 * time.Minute,
}

var RedisConfig = struct {
	ReadyTimeout time.Duration
}{
	ReadyTimeout: 5 * time.Second,
}

// Generation holds the tunables of the topic/script/batch-plan pipeline.
// TitleSimilarityThreshold is the inherited 0.80 cutoff; it has no
// documented rationale, so it is surfaced in config rather than buried
// in the deduplicator.
var Generation = struct {
	MaxPriorTopics           int
	TitleSimilarityThreshold float64
	MaxTopicsPerRequest      int
	MaxScriptsPerBatch       int
	ScriptWorkers            int
	FallbackClusterSize      int
}{
	MaxPriorTopics:           20,
	TitleSimilarityThreshold: 0.80,
	MaxTopicsPerRequest:      30,
	MaxScriptsPerBatch:       20,
	ScriptWorkers:            4,
	FallbackClusterSize:      5,
}

var CircuitBreakerConfig = struct {
	FailureThreshold    int
	ResetTimeout        time.Duration
	RateLimitTimeout    time.Duration
	HealthCheckInterval time.Duration
	HealthCheckTimeout  time.Duration
}{
	FailureThreshold:    3,
	ResetTimeout:        30 * time.Second,
	RateLimitTimeout:    1 * time.Hour,
	HealthCheckInterval: 10 * time.Minute,
	HealthCheckTimeout:  10 * time.Second,
}

var StoreConfig = struct {
	ConnectTimeout  time.Duration
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}{
	ConnectTimeout:  5 * time.Second,
	MaxOpenConns:    25,
	MaxIdleConns:    5,
	ConnMaxLifetime: 5 * time.Minute,
}

var ServerConfig = struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}{
	ReadTimeout: 15 * time.Second,
	// generation requests wait on model inference
	WriteTimeout:    120 * time.Second,
	IdleTimeout:     60 * time.Second,
	ShutdownTimeout: 10 * time.Second,
}

var InputLimits = struct {
	MaxNicheLength       int
	MaxCatchphraseLength int
	MaxCustomEvents      int
}{
	MaxNicheLength:       200,
	MaxCatchphraseLength: 120,
	MaxCustomEvents:      10,
}
