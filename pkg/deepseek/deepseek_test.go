package deepseek_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitness-agent/pkg/deepseek"
)

func TestClient_GenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req deepseek.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		switch req.Messages[0].Content {
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
			Choices: []deepseek.Choice{{Message: deepseek.Message{Role: "assistant", Content: "ok"}}},
			Usage:   deepseek.Usage{TotalTokens: 3},
		})
	}))
	defer ts.Close()

	client, err := deepseek.New(deepseek.Config{APIKey: "k", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	t.Run("fills default model", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &deepseek.Request{
			Messages: []deepseek.Message{{Role: "user", Content: "hi"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Model != deepseek.DefaultModel || resp.Choices[0].Message.Content != "ok" {
			t.Errorf("unexpected response %+v", resp)
		}
	})

	t.Run("error message is decoded", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &deepseek.Request{
			Messages: []deepseek.Message{{Role: "user", Content: "bad key"}},
		})
		var apiErr *deepseek.APIError
		if !errors.As(err, &apiErr) || apiErr.Message != "invalid api key" {
			t.Fatalf("expected APIError with decoded message, got %v", err)
		}
		if errors.Is(err, deepseek.ErrRateLimited) {
			t.Error("401 must not be rate limited")
		}
	})

	t.Run("429 is rate limited", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &deepseek.Request{
			Messages: []deepseek.Message{{Role: "user", Content: "too many"}},
		})
		if !errors.Is(err, deepseek.ErrRateLimited) {
			t.Errorf("expected ErrRateLimited, got %v", err)
		}
	})
}
