package llmprovider_test

import (
	"context"
	"testing"

	"fitness-agent/config"
	"fitness-agent/pkg/llmprovider"
	"fitness-agent/pkg/log"
)

func TestInitializeProviders(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *config.LLMConfig
		wantNames []string
		wantErr   bool
	}{
		{
			name: "ordered by priority",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 10, APIKey: "k", Model: "gemini-2.5-flash"},
				{Name: "qwen", Enabled: true, Priority: 1, APIKey: "k", Model: "qwen-plus"},
				{Name: "deepseek", Enabled: true, Priority: 5, APIKey: "k", Model: "deepseek-chat"},
			}},
			wantNames: []string{"qwen", "deepseek", "gemini"},
		},
		{
			name: "langchain backends",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "groq", Enabled: true, Priority: 1, APIKey: "k", Model: "llama-3.3-70b-versatile"},
				{Name: "ollama", Enabled: true, Priority: 2, Model: "llama3.1", BaseURL: "http://localhost:11434"},
				{Name: "openai", Enabled: true, Priority: 3, APIKey: "k", Model: "gpt-4o-mini"},
			}},
			wantNames: []string{"groq", "ollama", "openai"},
		},
		{
			name: "broken provider is skipped",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "qwen", Enabled: true, Priority: 1, Model: "qwen-plus"},
				{Name: "gemini", Enabled: true, Priority: 2, APIKey: "k", Model: "gemini-2.5-flash"},
			}},
			wantNames: []string{"gemini"},
		},
		{
			name:    "nil config",
			wantErr: true,
		},
		{
			name:    "no providers",
			cfg:     &config.LLMConfig{},
			wantErr: true,
		},
		{
			name: "all disabled",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "qwen", Priority: 1, APIKey: "k", Model: "qwen-plus"},
			}},
			wantErr: true,
		},
		{
			name: "unknown provider only",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "mystery", Enabled: true, Priority: 1, APIKey: "k", Model: "x"},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			providers, err := llmprovider.InitializeProviders(context.Background(), tt.cfg, log.NewNop())
			if (err != nil) != tt.wantErr {
				t.Fatalf("InitializeProviders() error = %v, wantErr %v", err, tt.wantErr)
			}
			if len(providers) != len(tt.wantNames) {
				t.Fatalf("got %d providers, want %d", len(providers), len(tt.wantNames))
			}
			for i, want := range tt.wantNames {
				if providers[i].Name() != want {
					t.Errorf("providers[%d] = %s, want %s", i, providers[i].Name(), want)
				}
			}
		})
	}
}
