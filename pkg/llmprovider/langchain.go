package llmprovider

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
)

// LangChainAdapter serves any langchaingo model (openai, groq, ollama) as a Provider.
type LangChainAdapter struct {
	name  string
	model string
	llm   llms.Model
}

// NewLangChainAdapter wraps llm under the given provider and model names.
func NewLangChainAdapter(name, model string, llm llms.Model) *LangChainAdapter {
	return &LangChainAdapter{name: name, model: model, llm: llm}
}

// GenerateContent implements Provider interface
func (a *LangChainAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	var msgs []llms.MessageContent
	if req.System != "" {
		msgs = append(msgs, llms.TextParts(llms.ChatMessageTypeSystem, req.System))
	}
	msgs = append(msgs, llms.TextParts(llms.ChatMessageTypeHuman, req.Prompt))

	opts := []llms.CallOption{llms.WithTemperature(req.Temperature)}
	if req.MaxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(req.MaxTokens))
	}

	resp, err := a.llm.GenerateContent(ctx, msgs, opts...)
	if err != nil {
		// langchaingo surfaces HTTP status only in the error text.
		if strings.Contains(err.Error(), "429") {
			return nil, fmt.Errorf("%w: %w", ErrProviderRateLimited, err)
		}
		return nil, err
	}

	out := &Response{ProviderName: a.name, ModelName: a.model, Usage: &Usage{}}
	if len(resp.Choices) == 0 {
		return out, nil
	}

	choice := resp.Choices[0]
	out.Text = choice.Content
	out.Usage.InputTokens = intFromInfo(choice.GenerationInfo, "PromptTokens")
	out.Usage.OutputTokens = intFromInfo(choice.GenerationInfo, "CompletionTokens")
	out.Usage.TotalTokens = intFromInfo(choice.GenerationInfo, "TotalTokens")
	return out, nil
}

// Name returns provider name
func (a *LangChainAdapter) Name() string { return a.name }

// Model returns model name
func (a *LangChainAdapter) Model() string { return a.model }

func intFromInfo(info map[string]any, key string) int {
	switch v := info[key].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}
