package llmprovider

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name      string
	model     string
	err       error
	text      string
	delay     time.Duration
	callCount int
	lastReq   *Request
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	m.lastReq = req
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return &Response{Text: m.text, ProviderName: m.name, ModelName: m.model}, nil
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return m.model }

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.infoMessages = append(m.infoMessages, msg)
		}
	}
}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.warnMessages = append(m.warnMessages, msg)
		}
	}
}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func newTestManager(cfg *Config, providers ...Provider) (*Manager, *mockLogger) {
	l := &mockLogger{}
	return NewManager(providers, cfg, l), l
}

func TestGenerate_PrimaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "m1", text: "hello"}
	m, logger := newTestManager(&Config{FallbackEnabled: true, RetryAttempts: 3, RetryDelay: time.Millisecond}, primary)

	got, err := m.Generate(context.Background(), "say hello", GenerateOptions{Temperature: 0.1, MaxTokens: 64})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "hello" {
		t.Errorf("Generate = %q", got)
	}
	if primary.callCount != 1 {
		t.Errorf("primary called %d times, want 1", primary.callCount)
	}
	if primary.lastReq.Temperature != 0.1 || primary.lastReq.MaxTokens != 64 {
		t.Errorf("options not forwarded: %+v", primary.lastReq)
	}
	if len(logger.infoMessages) != 1 || len(logger.warnMessages) != 0 {
		t.Errorf("logs info=%d warn=%d", len(logger.infoMessages), len(logger.warnMessages))
	}
}

func TestGenerate_FallbackToSecondaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", err: errors.New("boom")}
	secondary := &mockProvider{name: "secondary", text: "from secondary"}
	m, logger := newTestManager(&Config{FallbackEnabled: true, RetryAttempts: 2, RetryDelay: time.Millisecond}, primary, secondary)

	got, err := m.Generate(context.Background(), "hi", GenerateOptions{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "from secondary" {
		t.Errorf("Generate = %q", got)
	}
	if primary.callCount != 2 || secondary.callCount != 1 {
		t.Errorf("calls primary=%d secondary=%d", primary.callCount, secondary.callCount)
	}
	if len(logger.warnMessages) != 1 {
		t.Errorf("expected 1 warn, got %d", len(logger.warnMessages))
	}
}

func TestGenerate_NoFallbackWhenDisabled(t *testing.T) {
	primary := &mockProvider{name: "primary", err: errors.New("boom")}
	secondary := &mockProvider{name: "secondary", text: "unused"}
	m, _ := newTestManager(&Config{RetryAttempts: 2, RetryDelay: time.Millisecond}, primary, secondary)

	if _, err := m.Generate(context.Background(), "hi", GenerateOptions{}); err == nil {
		t.Fatal("expected error")
	}
	if secondary.callCount != 0 {
		t.Errorf("secondary must not be called, got %d", secondary.callCount)
	}
}

func TestGenerate_ErrorKinds(t *testing.T) {
	tests := []struct {
		name      string
		providers []Provider
		cfg       Config
		prompt    string
		want      ErrorKind
	}{
		{
			name:   "no providers",
			prompt: "hi",
			want:   KindInvalidConfig,
		},
		{
			name:      "blank prompt",
			providers: []Provider{&mockProvider{name: "p", text: "x"}},
			prompt:    "   ",
			want:      KindInvalidConfig,
		},
		{
			name:      "transport",
			providers: []Provider{&mockProvider{name: "p", err: errors.New("connection refused")}},
			prompt:    "hi",
			want:      KindTransport,
		},
		{
			name:      "rate limit",
			providers: []Provider{&mockProvider{name: "p", err: ErrProviderRateLimited}},
			prompt:    "hi",
			want:      KindRateLimit,
		},
		{
			name:      "empty text counts as transport",
			providers: []Provider{&mockProvider{name: "p", text: "  "}},
			prompt:    "hi",
			want:      KindTransport,
		},
		{
			name:      "per call timeout",
			providers: []Provider{&mockProvider{name: "slow", text: "late", delay: time.Second}},
			cfg:       Config{CallTimeout: 20 * time.Millisecond},
			prompt:    "hi",
			want:      KindTransport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			m, _ := newTestManager(&cfg, tt.providers...)

			_, err := m.Generate(context.Background(), tt.prompt, GenerateOptions{})
			var ge *GenerationError
			if !errors.As(err, &ge) {
				t.Fatalf("expected *GenerationError, got %T %v", err, err)
			}
			if ge.Kind != tt.want {
				t.Errorf("Kind = %s, want %s", ge.Kind, tt.want)
			}
		})
	}
}

func TestGenerate_PerCallTimeoutWrapsDeadline(t *testing.T) {
	slow := &mockProvider{name: "slow", text: "late", delay: time.Second}
	m, _ := newTestManager(&Config{CallTimeout: 10 * time.Millisecond}, slow)

	start := time.Now()
	_, err := m.Generate(context.Background(), "hi", GenerateOptions{})
	if !errors.Is(err, ErrProviderTimeout) || !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected timeout chain, got %v", err)
	}
	if time.Since(start) > 500*time.Millisecond {
		t.Error("call timeout was not enforced")
	}
}

func TestGenerateJSON(t *testing.T) {
	type payload struct {
		Total int `json:"total"`
	}

	t.Run("cleans fenced output and appends instruction", func(t *testing.T) {
		p := &mockProvider{name: "p", text: "<think>hmm</think>\n```json\n{\"total\": 250}\n```"}
		m, _ := newTestManager(&Config{}, p)

		var out payload
		if err := m.GenerateJSON(context.Background(), "estimate", &out); err != nil {
			t.Fatalf("GenerateJSON: %v", err)
		}
		if out.Total != 250 {
			t.Errorf("Total = %d", out.Total)
		}
		if !strings.HasSuffix(p.lastReq.Prompt, JSONInstruction) || !strings.HasPrefix(p.lastReq.Prompt, "estimate") {
			t.Errorf("instruction not appended: %q", p.lastReq.Prompt)
		}
		if p.lastReq.Temperature != JSONTemperature {
			t.Errorf("Temperature = %v, want %v", p.lastReq.Temperature, JSONTemperature)
		}
	})

	t.Run("non JSON is malformed output", func(t *testing.T) {
		p := &mockProvider{name: "p", text: "I think it is about 250 calories"}
		m, _ := newTestManager(&Config{}, p)

		var out payload
		err := m.GenerateJSON(context.Background(), "estimate", &out)
		if !IsKind(err, KindMalformedOutput) {
			t.Errorf("expected malformed_output, got %v", err)
		}
	})

	t.Run("generation failure keeps its kind", func(t *testing.T) {
		p := &mockProvider{name: "p", err: ErrProviderRateLimited}
		m, _ := newTestManager(&Config{}, p)

		var out payload
		if err := m.GenerateJSON(context.Background(), "estimate", &out); !IsKind(err, KindRateLimit) {
			t.Errorf("expected rate_limit, got %v", err)
		}
	})
}
