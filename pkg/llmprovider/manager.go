package llmprovider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"fitness-agent/pkg/llmclean"
	"fitness-agent/pkg/log"
)

const (
	// JSONInstruction is appended to every GenerateJSON prompt.
	JSONInstruction = "\n\nRespond with valid JSON only."

	// JSONTemperature is the sampling temperature used by GenerateJSON.
	JSONTemperature = 0.3
)

// Manager orchestrates provider selection, fallback, and retry logic
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // whole fallback chain
	CallTimeout     time.Duration // single provider attempt
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config.RetryAttempts <= 0 {
		config.RetryAttempts = 1
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// Generate returns the raw text for prompt. Failures are *GenerationError.
func (m *Manager) Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", &GenerationError{Kind: KindInvalidConfig, Err: ErrInvalidRequest}
	}

	resp, err := m.GenerateContent(ctx, &Request{
		Prompt:      prompt,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// GenerateJSON asks for JSON only, cleans the reply and decodes it into out.
func (m *Manager) GenerateJSON(ctx context.Context, prompt string, out any) error {
	text, err := m.Generate(ctx, prompt+JSONInstruction, GenerateOptions{Temperature: JSONTemperature})
	if err != nil {
		return err
	}

	cleaned := llmclean.Clean(text)
	if !json.Valid([]byte(cleaned)) {
		return &GenerationError{Kind: KindMalformedOutput, Err: fmt.Errorf("not valid JSON: %.80q", cleaned)}
	}
	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		return &GenerationError{Kind: KindMalformedOutput, Err: err}
	}
	return nil
}

// GenerateContent iterates through providers in priority order with fallback logic
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, &GenerationError{Kind: KindInvalidConfig, Err: ErrNoProvidersConfigured}
	}

	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	for _, provider := range m.providers {
		if ctx.Err() != nil {
			lastErr = fmt.Errorf("global timeout exceeded after trying %d provider(s): %w",
				len(m.providers), ctx.Err())
			break
		}

		resp, err := m.generateWithRetry(ctx, provider, req)
		if err == nil {
			m.logSuccess(ctx, provider, resp)
			return resp, nil
		}

		m.logFailure(ctx, provider, err)
		lastErr = err

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, &GenerationError{
		Kind: classify(lastErr),
		Err:  fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr),
	}
}

// generateWithRetry retries one provider with linear backoff, bounding each
// attempt by CallTimeout.
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	var lastErr error

	for attempt := 0; attempt < m.config.RetryAttempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * m.config.RetryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err := m.callOnce(ctx, provider, req)
		if err == nil {
			return resp, nil
		}
		lastErr = &ProviderError{Provider: provider.Name(), Err: err}
	}

	return nil, lastErr
}

func (m *Manager) callOnce(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	if m.config.CallTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.CallTimeout)
		defer cancel()
	}

	resp, err := provider.GenerateContent(ctx, req)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %w", ErrProviderTimeout, err)
		}
		return nil, err
	}
	if resp == nil || strings.TrimSpace(resp.Text) == "" {
		return nil, ErrEmptyResponse
	}
	return resp, nil
}

func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	usage := resp.Usage
	if usage == nil {
		usage = &Usage{}
	}
	m.logger.Info(ctx, "LLM generation successful",
		"provider", provider.Name(),
		"model", provider.Model(),
		"input_tokens", usage.InputTokens,
		"output_tokens", usage.OutputTokens,
	)
}

func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warn(ctx, "LLM generation failed",
		"provider", provider.Name(),
		"model", provider.Model(),
		"error", err.Error(),
	)
}
