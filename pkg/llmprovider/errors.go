package llmprovider

import (
	"errors"
	"fmt"
)

var (
	// ErrAllProvidersFailed indicates all providers failed to generate content
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrInvalidRequest indicates the request is malformed
	ErrInvalidRequest = errors.New("invalid request")

	// ErrProviderTimeout indicates a provider request timed out
	ErrProviderTimeout = errors.New("provider timeout")

	// ErrProviderRateLimited indicates rate limit exceeded
	ErrProviderRateLimited = errors.New("provider rate limited")

	// ErrEmptyResponse indicates the provider answered with no text
	ErrEmptyResponse = errors.New("empty response")
)

// ErrorKind classifies a generation failure.
type ErrorKind string

const (
	KindTransport       ErrorKind = "transport"
	KindRateLimit       ErrorKind = "rate_limit"
	KindInvalidConfig   ErrorKind = "invalid_config"
	KindMalformedOutput ErrorKind = "malformed_output"
)

// GenerationError is the only error type returned by Manager.Generate and
// Manager.GenerateJSON.
type GenerationError struct {
	Kind ErrorKind
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation %s: %v", e.Kind, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a GenerationError of kind k.
func IsKind(err error, k ErrorKind) bool {
	var ge *GenerationError
	return errors.As(err, &ge) && ge.Kind == k
}

// classify maps a provider chain failure to its kind.
func classify(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrNoProvidersConfigured), errors.Is(err, ErrInvalidRequest):
		return KindInvalidConfig
	case errors.Is(err, ErrProviderRateLimited):
		return KindRateLimit
	default:
		return KindTransport
	}
}

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
