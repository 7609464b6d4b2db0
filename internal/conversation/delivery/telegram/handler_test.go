package telegram

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/goleak"

	"fitness-agent/internal/conversation"
	"fitness-agent/internal/model"
	"fitness-agent/pkg/log"
	pkgTelegram "fitness-agent/pkg/telegram"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type sentMessage struct {
	chatID int64
	text   string
}

type fakeSender struct {
	mu   sync.Mutex
	sent []sentMessage
}

func (f *fakeSender) SendMessage(_ context.Context, chatID int64, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMessage{chatID, text})
	return nil
}

type stubUseCase struct {
	mu     sync.Mutex
	userID string
	res    conversation.Result
	err    error
}

func (s *stubUseCase) HandleMessage(_ context.Context, userID, _ string) (conversation.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = userID
	return s.res, s.err
}

func newTestServer(uc conversation.UseCase, secret string) (*gin.Engine, Handler, *fakeSender) {
	gin.SetMode(gin.TestMode)
	sender := &fakeSender{}
	h := New(log.NewNop(), uc, sender, secret)
	r := gin.New()
	RegisterRoutes(r, h)
	return r, h, sender
}

func postUpdate(r *gin.Engine, body, secret string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook/telegram", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if secret != "" {
		req.Header.Set(pkgTelegram.HeaderSecretToken, secret)
	}
	r.ServeHTTP(w, req)
	return w
}

const textUpdate = `{"update_id": 1, "message": {"message_id": 7, "from": {"id": 99, "first_name": "A"}, "chat": {"id": 555, "type": "private"}, "text": "I ate 2 eggs"}}`

func TestHandleWebhookReplies(t *testing.T) {
	uc := &stubUseCase{res: conversation.Result{Response: "✅ Logged! Total: 150 calories", Intent: model.IntentLogFood, Status: conversation.StatusOK}}
	r, h, sender := newTestServer(uc, "")

	w := postUpdate(r, textUpdate, "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "accepted") {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	h.Wait()

	if uc.userID != "telegram_99" {
		t.Errorf("user id = %q, want telegram_99", uc.userID)
	}
	if len(sender.sent) != 1 || sender.sent[0] != (sentMessage{555, "✅ Logged! Total: 150 calories"}) {
		t.Errorf("sent = %+v", sender.sent)
	}
}

func TestHandleWebhookValidationReply(t *testing.T) {
	uc := &stubUseCase{
		res: conversation.Result{Response: "Invalid request: message is too long"},
		err: model.NewBadInput("message", conversation.ErrMessageTooLong),
	}
	r, h, sender := newTestServer(uc, "")

	postUpdate(r, textUpdate, "")
	h.Wait()

	if len(sender.sent) != 1 || sender.sent[0].text != "Invalid request: message is too long" {
		t.Errorf("sent = %+v", sender.sent)
	}
}

func TestHandleWebhookCommands(t *testing.T) {
	uc := &stubUseCase{}
	r, h, sender := newTestServer(uc, "")

	postUpdate(r, `{"update_id": 2, "message": {"message_id": 1, "chat": {"id": 1, "type": "private"}, "text": "/start"}}`, "")
	postUpdate(r, `{"update_id": 3, "message": {"message_id": 2, "chat": {"id": 1, "type": "private"}, "text": "/help"}}`, "")
	postUpdate(r, `{"update_id": 4, "message": {"message_id": 3, "chat": {"id": -7, "type": "group"}, "text": "/start@FitnessBot"}}`, "")
	postUpdate(r, `{"update_id": 5, "message": {"message_id": 4, "chat": {"id": -7, "type": "group"}, "text": "/help@FitnessBot"}}`, "")
	h.Wait()

	if uc.userID != "" {
		t.Errorf("commands must not reach the conversation")
	}
	counts := map[string]int{}
	for _, m := range sender.sent {
		counts[m.text]++
	}
	if len(sender.sent) != 4 || counts[replyStart] != 2 || counts[replyHelp] != 2 {
		t.Errorf("sent = %+v", sender.sent)
	}
}

func TestHandleWebhookIgnoredAndRejected(t *testing.T) {
	uc := &stubUseCase{}
	r, h, sender := newTestServer(uc, "s3cret")

	w := postUpdate(r, `{"update_id": 4}`, "s3cret")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "ignored") {
		t.Errorf("non-message update: status = %d, body %s", w.Code, w.Body.String())
	}

	w = postUpdate(r, textUpdate, "wrong")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong secret: status = %d, want 401", w.Code)
	}

	w = postUpdate(r, `{"update_id":`, "s3cret")
	if w.Code != http.StatusBadRequest {
		t.Errorf("malformed update: status = %d, want 400", w.Code)
	}
	h.Wait()

	if len(sender.sent) != 0 {
		t.Errorf("nothing must be sent, got %+v", sender.sent)
	}
}

func TestUserIDForHiddenSender(t *testing.T) {
	msg := &pkgTelegram.Message{Chat: &pkgTelegram.Chat{ID: -100}}
	if got := userIDFor(msg); got != "telegram_-100" {
		t.Errorf("userIDFor = %q", got)
	}
}
