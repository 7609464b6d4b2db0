package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"fitness-agent/config"
	"fitness-agent/internal/conversation"
	"fitness-agent/internal/middleware"
	"fitness-agent/internal/model"
	"fitness-agent/pkg/log"
)

type stubUseCase struct {
	mu  sync.Mutex
	res conversation.Result
	err error

	userID  string
	message string
}

func (s *stubUseCase) HandleMessage(_ context.Context, userID, message string) (conversation.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID, s.message = userID, message
	return s.res, s.err
}

func (s *stubUseCase) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func (s *stubUseCase) setResult(res conversation.Result, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.res, s.err = res, err
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func newTestRouter(uc conversation.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := log.NewNop()
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(l, uc), middleware.New(l, config.RateLimitConfig{}, config.CORSConfig{}))
	return r
}

func post(r *gin.Engine, body string) (*httptest.ResponseRecorder, envelope) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestChat(t *testing.T) {
	uc := &stubUseCase{res: conversation.Result{
		Response:   "✅ Goal set successfully!",
		Intent:     model.IntentSetGoal,
		Confidence: 0.9,
		Status:     conversation.StatusOK,
	}}
	r := newTestRouter(uc)

	w, env := post(r, `{"user_id":"u1","message":"lose weight"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if uc.userID != "u1" || uc.message != "lose weight" {
		t.Errorf("use case got %q %q", uc.userID, uc.message)
	}

	var got chatResp
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if got.Response != "✅ Goal set successfully!" || got.Intent == nil || *got.Intent != "set_goal" || *got.Confidence != 0.9 {
		t.Errorf("unexpected reply %+v", got)
	}
	if got.Metadata == nil {
		t.Errorf("metadata must be an object, not null")
	}
}

func TestChatErrors(t *testing.T) {
	tests := []struct {
		name       string
		uc         *stubUseCase
		body       string
		wantStatus int
		wantCode   int
	}{
		{
			name:       "malformed body",
			uc:         &stubUseCase{},
			body:       `{"user_id":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   140001,
		},
		{
			name:       "validation",
			uc:         &stubUseCase{err: model.NewBadInput("user_id", conversation.ErrUserIDRequired)},
			body:       `{"message":"hi"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   140003,
		},
		{
			name:       "request failed",
			uc:         &stubUseCase{res: conversation.Result{Response: "Sorry", Status: conversation.StatusRequestFailed}},
			body:       `{"user_id":"u1","message":"I ate eggs"}`,
			wantStatus: http.StatusInternalServerError,
			wantCode:   140004,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := post(newTestRouter(tt.uc), tt.body)
			if w.Code != tt.wantStatus || env.ErrorCode != tt.wantCode {
				t.Fatalf("status = %d code = %d, want %d %d", w.Code, env.ErrorCode, tt.wantStatus, tt.wantCode)
			}
		})
	}

	w, env := post(newTestRouter(&stubUseCase{res: conversation.Result{Response: "Sorry", Status: conversation.StatusRequestFailed}}), `{"user_id":"u1"}`)
	var got chatResp
	if err := json.Unmarshal(env.Data, &got); err != nil || got.Response != "Sorry" {
		t.Errorf("failed request must still carry the reply: %s", w.Body.String())
	}
}

func TestChatValidationKeepsReply(t *testing.T) {
	uc := &stubUseCase{
		res: conversation.Result{Response: "Invalid request: user_id is required"},
		err: model.NewBadInput("user_id", conversation.ErrUserIDRequired),
	}
	w, env := post(newTestRouter(uc), `{"message":"hi"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	var got struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(env.Data, &got); err != nil || got.Response != "Invalid request: user_id is required" {
		t.Errorf("rejected request must carry the reply: %s", w.Body.String())
	}
}

func TestStream(t *testing.T) {
	uc := &stubUseCase{res: conversation.Result{Response: "Logged", Intent: model.IntentLogFood, Confidence: 0.8, Status: conversation.StatusOK}}
	srv := httptest.NewServer(newTestRouter(uc))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/chat/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()

	for i := 0; i < 2; i++ {
		if err := conn.WriteJSON(chatReq{UserID: "u1", Message: "eggs"}); err != nil {
			t.Fatalf("WriteJSON: %v", err)
		}
		var got chatResp
		if err := conn.ReadJSON(&got); err != nil {
			t.Fatalf("ReadJSON: %v", err)
		}
		if got.Response != "Logged" || got.Intent == nil || *got.Intent != "log_food" {
			t.Errorf("unexpected reply %+v", got)
		}
	}

	uc.setErr(model.NewBadInput("user_id", conversation.ErrUserIDRequired))
	if err := conn.WriteJSON(chatReq{Message: "eggs"}); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	var rejected wsError
	if err := conn.ReadJSON(&rejected); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if rejected.Error != conversation.ErrUserIDRequired.Error() {
		t.Errorf("error = %q", rejected.Error)
	}

	uc.setResult(conversation.Result{Response: "Sorry", Status: conversation.StatusRequestFailed}, nil)
	if err := conn.WriteJSON(chatReq{UserID: "u1", Message: "eggs"}); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	var failed wsError
	if err := conn.ReadJSON(&failed); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if failed.Error != string(conversation.StatusRequestFailed) || failed.Response != "Sorry" {
		t.Errorf("unexpected failure frame %+v", failed)
	}
}
