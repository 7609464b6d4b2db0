package llmprovider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitness-agent/pkg/deepseek"
)

func TestDeepSeekAdapter(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req deepseek.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		switch req.Messages[len(req.Messages)-1].Content {
		case "too many":
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"message":"slow down","type":"rate_limit"}}`))
			return
		case "bad key":
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"invalid api key","type":"auth"}}`))
			return
		}
		json.NewEncoder(w).Encode(deepseek.Response{
			Model:   req.Model,
			Choices: []deepseek.Choice{{Message: deepseek.Message{Role: "assistant", Content: `{"intent":"get_summary"}`}}},
			Usage:   deepseek.Usage{PromptTokens: 9, CompletionTokens: 5, TotalTokens: 14},
		})
	}))
	defer ts.Close()

	client, err := deepseek.New(deepseek.Config{APIKey: "k", BaseURL: ts.URL, HTTPClient: ts.Client()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a := NewDeepSeekAdapter(client)

	t.Run("maps text and usage", func(t *testing.T) {
		resp, err := a.GenerateContent(context.Background(), &Request{System: "sys", Prompt: "summary please"})
		if err != nil {
			t.Fatalf("GenerateContent: %v", err)
		}
		if resp.Text != `{"intent":"get_summary"}` || resp.ProviderName != "deepseek" || resp.ModelName != deepseek.DefaultModel {
			t.Errorf("unexpected response %+v", resp)
		}
		if resp.Usage.InputTokens != 9 || resp.Usage.OutputTokens != 5 || resp.Usage.TotalTokens != 14 {
			t.Errorf("usage = %+v", resp.Usage)
		}
	})

	t.Run("429 maps to rate limit", func(t *testing.T) {
		_, err := a.GenerateContent(context.Background(), &Request{Prompt: "too many"})
		if !errors.Is(err, ErrProviderRateLimited) {
			t.Errorf("expected ErrProviderRateLimited, got %v", err)
		}
		var apiErr *deepseek.APIError
		if !errors.As(err, &apiErr) || apiErr.Message != "slow down" {
			t.Errorf("api error not kept: %v", err)
		}
	})

	t.Run("other errors pass through", func(t *testing.T) {
		_, err := a.GenerateContent(context.Background(), &Request{Prompt: "bad key"})
		if err == nil || errors.Is(err, ErrProviderRateLimited) {
			t.Errorf("401 must not be rate limited, got %v", err)
		}
	})
}
