package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Store      StoreConfig
	Redis      RedisConfig
	Gemini     GeminiConfig
	OpenAI     OpenAIConfig
	Generation GenerationConfig
	Logging    LoggingConfig
}

type ServerConfig struct {
	Host string
	Port int
}

// StoreConfig selects the persistence backend: "postgres" for the hosted
// relational store, "sqlite" for the local-only store.
type StoreConfig struct {
	Backend    string
	SQLitePath string
	Postgres   PostgresConfig
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	Enabled  bool
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey         string
	Model          string
	EnableFallback bool
}

type GenerationConfig struct {
	// TitleSimilarityThreshold rejects topic titles whose Levenshtein
	// ratio against any known title exceeds it. Inherited default 0.80.
	TitleSimilarityThreshold float64
	MaxPriorTopics           int
	DefaultRegion            string
}

type LoggingConfig struct {
	Level string
	File  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvInt("SERVER_PORT", 8080),
		},
		Store: StoreConfig{
			Backend:    strings.ToLower(getEnv("STORE_BACKEND", "sqlite")),
			SQLitePath: getEnv("SQLITE_PATH", "data/studio.db"),
			Postgres: PostgresConfig{
				Host:     getEnv("POSTGRES_HOST", "localhost"),
				Port:     getEnvInt("POSTGRES_PORT", 5432),
				User:     getEnv("POSTGRES_USER", "studio"),
				Password: getEnv("POSTGRES_PASSWORD", ""),
				Database: getEnv("POSTGRES_DB", "studio"),
			},
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			Enabled:  getEnvBool("REDIS_ENABLED", true),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		},
		OpenAI: OpenAIConfig{
			APIKey:         getEnv("OPENAI_API_KEY", ""),
			Model:          getEnv("OPENAI_MODEL", "gpt-4.1-mini"),
			EnableFallback: getEnvBool("OPENAI_ENABLE_FALLBACK", true),
		},
		Generation: GenerationConfig{
			TitleSimilarityThreshold: getEnvFloat("TITLE_SIMILARITY_THRESHOLD", 0.80),
			MaxPriorTopics:           getEnvInt("MAX_PRIOR_TOPICS", 20),
			DefaultRegion:            getEnv("DEFAULT_REGION", "US"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	switch c.Store.Backend {
	case "postgres":
		if c.Store.Postgres.Password == "" {
			return fmt.Errorf("POSTGRES_PASSWORD is required when STORE_BACKEND=postgres")
		}
	case "sqlite":
		if c.Store.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required when STORE_BACKEND=sqlite")
		}
	default:
		return fmt.Errorf("STORE_BACKEND must be postgres or sqlite, got %q", c.Store.Backend)
	}
	if c.Generation.TitleSimilarityThreshold <= 0 || c.Generation.TitleSimilarityThreshold > 1 {
		return fmt.Errorf("TITLE_SIMILARITY_THRESHOLD must be in (0, 1], got %v", c.Generation.TitleSimilarityThreshold)
	}
	if c.Generation.MaxPriorTopics < 0 {
		return fmt.Errorf("MAX_PRIOR_TOPICS must not be negative")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
