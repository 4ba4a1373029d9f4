package errors

import "fmt"

// Error codes
const (
	CodeConfig     = "CONFIG_ERROR"
	CodeParse      = "PARSE_ERROR"
	CodeValidation = "VALIDATION_ERROR"
	CodeUpstream   = "UPSTREAM_ERROR"
	CodeCache      = "CACHE_ERROR"
	CodeStore      = "STORE_ERROR"
)

type AppError struct {
	Message    string
	Code       string
	StatusCode int
	Context    map[string]any
	Cause      error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// ConfigError signals a missing or invalid required configuration value.
// Fatal for the request; never retried.
type ConfigError struct {
	*AppError
	Key string
}

func NewConfigError(message, key string) *ConfigError {
	return &ConfigError{
		AppError: &AppError{
			Message:    message,
			Code:       CodeConfig,
			StatusCode: 500,
			Context:    map[string]any{"key": key},
		},
		Key: key,
	}
}

// ParseError signals that a model response did not decode to the expected
// JSON shape. Raw carries the original response text for diagnostics.
type ParseError struct {
	*AppError
	Raw string
}

func NewParseError(message, raw string, cause error) *ParseError {
	return &ParseError{
		AppError: &AppError{
			Message:    message,
			Code:       CodeParse,
			StatusCode: 502,
			Context:    map[string]any{"raw_length": len(raw)},
			Cause:      cause,
		},
		Raw: raw,
	}
}

type ValidationError struct {
	*AppError
	Field string
	Value interface{}
}

func NewValidationError(message, field string, value interface{}) *ValidationError {
	return &ValidationError{
		AppError: &AppError{
			Message:    message,
			Code:       CodeValidation,
			StatusCode: 400,
			Context: map[string]any{
				"field": field,
				"value": value,
			},
		},
		Field: field,
		Value: value,
	}
}

// UpstreamError signals that the completion service itself failed
// (timeout, rate limit, invalid key). The upstream message is preserved.
type UpstreamError struct {
	*AppError
	Provider string
}

func NewUpstreamError(message, provider string, cause error) *UpstreamError {
	return &UpstreamError{
		AppError: &AppError{
			Message:    message,
			Code:       CodeUpstream,
			StatusCode: 502,
			Context:    map[string]any{"provider": provider},
			Cause:      cause,
		},
		Provider: provider,
	}
}

type CacheError struct {
	*AppError
	Operation string
	Key       string
}

func NewCacheError(message, operation, key string, cause error) *CacheError {
	return &CacheError{
		AppError: &AppError{
			Message:    message,
			Code:       CodeCache,
			StatusCode: 500,
			Context: map[string]any{
				"operation": operation,
				"key":       key,
			},
			Cause: cause,
		},
		Operation: operation,
		Key:       key,
	}
}

type StoreError struct {
	*AppError
	Collection string
	Operation  string
}

func NewStoreError(message, collection, operation string, cause error) *StoreError {
	return &StoreError{
		AppError: &AppError{
			Message:    message,
			Code:       CodeStore,
			StatusCode: 500,
			Context: map[string]any{
				"collection": collection,
				"operation":  operation,
			},
			Cause: cause,
		},
		Collection: collection,
		Operation:  operation,
	}
}
