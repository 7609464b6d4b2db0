package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"fitness-agent/config"
	"fitness-agent/internal/goal/repository/docstore"
	"fitness-agent/internal/goal/usecase"
	"fitness-agent/internal/middleware"
	"fitness-agent/internal/store/memory"
	"fitness-agent/pkg/log"
	"fitness-agent/pkg/response"
)

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := log.NewNop()
	h := New(l, usecase.New(l, docstore.New(memory.New(), l)))

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), h, middleware.New(l, config.RateLimitConfig{}, config.CORSConfig{}))
	return r
}

func do(r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestGoalRoutes(t *testing.T) {
	r := newTestRouter()

	t.Run("get before set is 404", func(t *testing.T) {
		w, env := do(r, http.MethodGet, "/api/v1/goals/u1", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
		if env.Message != "No goal found for user" {
			t.Errorf("message = %q", env.Message)
		}
	})

	t.Run("set then get", func(t *testing.T) {
		w, _ := do(r, http.MethodPost, "/api/v1/goals/u1", `{"goal_type":"muscle_gain","target_calories":2800,"target_weight":80}`)
		if w.Code != http.StatusOK {
			t.Fatalf("set status = %d, body %s", w.Code, w.Body.String())
		}

		w, env := do(r, http.MethodGet, "/api/v1/goals/u1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("get status = %d", w.Code)
		}
		var got struct {
			UserID         string   `json:"user_id"`
			GoalType       string   `json:"goal_type"`
			TargetCalories *int     `json:"target_calories"`
			TargetWeight   *float64 `json:"target_weight"`
			TargetDate     *string  `json:"target_date"`
			CreatedAt      string   `json:"created_at"`
		}
		if err := json.Unmarshal(env.Data, &got); err != nil {
			t.Fatalf("decode data: %v", err)
		}
		if got.UserID != "u1" || got.GoalType != "muscle_gain" || got.TargetCalories == nil || *got.TargetCalories != 2800 ||
			got.TargetWeight == nil || *got.TargetWeight != 80 || got.TargetDate != nil {
			t.Errorf("unexpected goal %+v", got)
		}
		if _, err := time.ParseInLocation(response.DateTimeFormat, got.CreatedAt, time.Local); err != nil {
			t.Errorf("created_at %q: %v", got.CreatedAt, err)
		}
	})
}

func TestSetValidation(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"goal_type":`},
		{"missing goal type", `{"target_calories": 2000}`},
		{"unknown goal type", `{"goal_type":"bulking"}`},
		{"calories out of range", `{"goal_type":"maintenance","target_calories":12000}`},
		{"weight out of range", `{"goal_type":"maintenance","target_weight":500}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := do(r, http.MethodPost, "/api/v1/goals/u1", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			if env.ErrorCode == 0 {
				t.Errorf("error code not set: %s", w.Body.String())
			}
		})
	}
}
