package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"

	"fitness-agent/internal/conversation"
	fooddocstore "fitness-agent/internal/foodlog/repository/docstore"
	foodusecase "fitness-agent/internal/foodlog/usecase"
	goaldocstore "fitness-agent/internal/goal/repository/docstore"
	goalusecase "fitness-agent/internal/goal/usecase"
	"fitness-agent/internal/model"
	"fitness-agent/internal/router"
	"fitness-agent/internal/store"
	"fitness-agent/internal/store/memory"
	summaryusecase "fitness-agent/internal/summary/usecase"
	"fitness-agent/pkg/llmprovider"
	"fitness-agent/pkg/log"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// scriptedGenerator answers by prompt kind.
type scriptedGenerator struct {
	mu      sync.Mutex
	replies map[string]string
	errs    map[string]error
	calls   map[string]int
	prompts map[string]string
}

func newScripted(replies map[string]string) *scriptedGenerator {
	return &scriptedGenerator{
		replies: replies,
		errs:    map[string]error{},
		calls:   map[string]int{},
		prompts: map[string]string{},
	}
}

func promptKind(prompt string) string {
	switch {
	case strings.Contains(prompt, "Classify the user's intent"):
		return "intent"
	case strings.Contains(prompt, "Extract food items"):
		return "food"
	case strings.Contains(prompt, "Extract fitness goal"):
		return "goal"
	case strings.Contains(prompt, "Estimate calories"):
		return "estimate"
	case strings.Contains(prompt, "clarification question"):
		return "clarify"
	default:
		return "unknown"
	}
}

func (g *scriptedGenerator) Generate(_ context.Context, prompt string, _ llmprovider.GenerateOptions) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	k := promptKind(prompt)
	g.calls[k]++
	g.prompts[k] = prompt
	if err := g.errs[k]; err != nil {
		return "", err
	}
	return g.replies[k], nil
}

func (g *scriptedGenerator) GenerateJSON(ctx context.Context, prompt string, out any) error {
	text, err := g.Generate(ctx, prompt, llmprovider.GenerateOptions{})
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return &llmprovider.GenerationError{Kind: llmprovider.KindMalformedOutput, Err: err}
	}
	return nil
}

func (g *scriptedGenerator) count(kind string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls[kind]
}

type fixture struct {
	uc  *implUseCase
	gen *scriptedGenerator
	db  store.Store
}

func newFixture(t *testing.T, gen *scriptedGenerator) fixture {
	t.Helper()
	return newFixtureOn(t, gen, memory.New())
}

func newFixtureOn(t *testing.T, gen *scriptedGenerator, db store.Store) fixture {
	t.Helper()
	l := log.NewNop()
	foods := foodusecase.New(l, gen, fooddocstore.New(db, l))
	goals := goalusecase.New(l, goaldocstore.New(db, l))
	sum := summaryusecase.New(l, foods, goals, time.UTC)
	r := router.New(gen, l, router.Options{})
	return fixture{
		uc:  New(l, gen, r, foods, goals, sum, Options{}),
		gen: gen,
		db:  db,
	}
}

// failingStore refuses every operation on one collection.
type failingStore struct {
	store.Store
	collection string
}

var errStoreDown = errors.New("connection refused")

func (s failingStore) Insert(ctx context.Context, collection string, rec store.Record) (store.Record, error) {
	if collection == s.collection {
		return nil, store.Unavailable("insert", collection, errStoreDown)
	}
	return s.Store.Insert(ctx, collection, rec)
}

func (s failingStore) Query(ctx context.Context, collection string, opt store.QueryOptions) ([]store.Record, error) {
	if collection == s.collection {
		return nil, store.Unavailable("query", collection, errStoreDown)
	}
	return s.Store.Query(ctx, collection, opt)
}

func (s failingStore) Update(ctx context.Context, collection string, fields store.Record, filters store.Filters) (store.Record, error) {
	if collection == s.collection {
		return nil, store.Unavailable("update", collection, errStoreDown)
	}
	return s.Store.Update(ctx, collection, fields, filters)
}

func (f fixture) records(t *testing.T, collection, userID string) []store.Record {
	t.Helper()
	recs, err := f.db.Query(context.Background(), collection, store.QueryOptions{Filters: store.Filters{"user_id": userID}})
	if err != nil {
		t.Fatalf("Query %s: %v", collection, err)
	}
	return recs
}

const (
	intentFood    = `{"intent": "log_food", "confidence": 0.95}`
	intentGoal    = `{"intent": "set_goal", "confidence": 0.9}`
	intentSummary = `{"intent": "get_summary", "confidence": 0.85}`

	eggsAndToast = "```json\n{\"items\": [{\"name\": \"eggs\", \"quantity\": 2, \"unit\": \"pieces\"}, {\"name\": \"toast\", \"quantity\": 1, \"unit\": \"slice\"}]}\n```"
	estimate250  = `{"total": 250, "breakdown": [
		{"name": "eggs", "quantity": 2, "unit": "pieces", "calories": 150, "protein": 12, "carbs": 1, "fat": 10},
		{"name": "toast", "quantity": 1, "unit": "slice", "calories": 100, "protein": 3, "carbs": 18, "fat": 1}]}`
)

func TestLogFoodEndToEnd(t *testing.T) {
	f := newFixture(t, newScripted(map[string]string{
		"intent":   intentFood,
		"food":     eggsAndToast,
		"estimate": estimate250,
	}))

	res, err := f.uc.HandleMessage(context.Background(), "u1", "I ate 2 eggs and toast")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}

	if want := "✅ Logged! Total: 250 calories\n\nBreakdown:\neggs (150 cal), toast (100 cal)"; res.Response != want {
		t.Errorf("response = %q, want %q", res.Response, want)
	}
	if res.Status != conversation.StatusOK || res.Intent != model.IntentLogFood || res.Stage != model.StageEstimating {
		t.Errorf("unexpected result %+v", res)
	}
	est, ok := res.Metadata[MetaEstimate].(model.CalorieEstimate)
	if !ok || est.Total != 250 || len(est.Breakdown) != 2 {
		t.Errorf("estimate metadata = %#v", res.Metadata[MetaEstimate])
	}

	recs := f.records(t, store.CollectionFoodLogs, "u1")
	if len(recs) != 1 {
		t.Fatalf("food logs = %d, want 1", len(recs))
	}
	var entry model.FoodLog
	if err := store.Decode(recs[0], &entry); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if entry.TotalCalories != 250 {
		t.Errorf("total_calories = %d, want 250", entry.TotalCalories)
	}
	wantItems := []model.FoodItem{
		{Name: "eggs", Quantity: 2, Unit: "pieces"},
		{Name: "toast", Quantity: 1, Unit: "slice"},
	}
	if diff := cmp.Diff(wantItems, entry.FoodItems); diff != "" {
		t.Errorf("stored items mismatch (-want +got):\n%s", diff)
	}
}

func TestSetGoalTwiceKeepsOneRecord(t *testing.T) {
	f := newFixture(t, newScripted(map[string]string{
		"intent": intentGoal,
		"goal":   `{"goal_type": "weight_loss", "target_calories": 1800}`,
	}))
	ctx := context.Background()
	msg := "set my goal to lose weight, 1800 calories a day"

	res, err := f.uc.HandleMessage(ctx, "u1", msg)
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if res.Response != ResponseGoalSet {
		t.Errorf("first response = %q, want %q", res.Response, ResponseGoalSet)
	}

	res, err = f.uc.HandleMessage(ctx, "u1", msg)
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if res.Response != ResponseGoalUpdated {
		t.Errorf("second response = %q, want %q", res.Response, ResponseGoalUpdated)
	}

	recs := f.records(t, store.CollectionGoals, "u1")
	if len(recs) != 1 {
		t.Fatalf("goal records = %d, want 1", len(recs))
	}
	var g model.Goal
	if err := store.Decode(recs[0], &g); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if g.GoalType != model.GoalWeightLoss || g.TargetCalories == nil || *g.TargetCalories != 1800 {
		t.Errorf("stored goal = %+v", g)
	}
}

func TestGoalWithoutExtractionDefaultsToMaintenance(t *testing.T) {
	f := newFixture(t, newScripted(map[string]string{
		"intent": intentGoal,
		"goal":   "no idea",
	}))

	res, _ := f.uc.HandleMessage(context.Background(), "u1", "I want a goal")
	if res.Response != ResponseGoalSet {
		t.Fatalf("response = %q", res.Response)
	}
	g, ok := res.Metadata[MetaGoal].(model.Goal)
	if !ok || g.GoalType != model.GoalMaintenance {
		t.Errorf("goal metadata = %#v", res.Metadata[MetaGoal])
	}
}

func TestGoalOutOfRangeIsAnsweredNotStored(t *testing.T) {
	f := newFixture(t, newScripted(map[string]string{
		"intent": intentGoal,
		"goal":   `{"goal_type": "muscle_gain", "target_calories": 25000}`,
	}))

	res, err := f.uc.HandleMessage(context.Background(), "u1", "bulk at 25000 calories")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if !strings.HasPrefix(res.Response, "⚠️") || res.Status != conversation.StatusOK {
		t.Errorf("unexpected result %+v", res)
	}
	if n := len(f.records(t, store.CollectionGoals, "u1")); n != 0 {
		t.Errorf("goal records = %d, want 0", n)
	}
}

func TestLowConfidenceAlwaysClarifies(t *testing.T) {
	for _, intent := range model.Intents {
		t.Run(string(intent), func(t *testing.T) {
			f := newFixture(t, newScripted(map[string]string{
				"intent":  `{"intent": "` + string(intent) + `", "confidence": 0.59}`,
				"clarify": "Did you want to log a meal?",
			}))

			res, err := f.uc.HandleMessage(context.Background(), "u1", "eggs maybe")
			if err != nil {
				t.Fatalf("HandleMessage: %v", err)
			}
			if res.Stage != model.StageClarification {
				t.Errorf("stage = %s, want clarification", res.Stage)
			}
			if res.Intent != intent || res.Confidence != 0.59 {
				t.Errorf("classification not reported: %s %.2f", res.Intent, res.Confidence)
			}
			if res.Response != "Did you want to log a meal?" || res.Metadata[MetaNeedsClarification] != true {
				t.Errorf("unexpected result %+v", res)
			}
			if f.gen.count("food")+f.gen.count("goal")+f.gen.count("estimate") != 0 {
				t.Errorf("no handler beyond clarification may run")
			}
		})
	}
}

func TestClarificationPromptHint(t *testing.T) {
	f := newFixture(t, newScripted(map[string]string{
		"intent":  `{"intent": "log_food", "confidence": 0.45}`,
		"clarify": "Did you eat something?",
	}))
	if _, err := f.uc.HandleMessage(context.Background(), "u1", "eggs?"); err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	prompt := f.gen.prompts["clarify"]
	if !strings.Contains(prompt, `"log_food" (User wants to log food/meal) with confidence 0.45`) {
		t.Errorf("hint missing from prompt:\n%s", prompt)
	}

	f = newFixture(t, newScripted(map[string]string{"intent": "garbage", "clarify": "What do you mean?"}))
	res, _ := f.uc.HandleMessage(context.Background(), "u1", "hmm")
	if strings.Contains(f.gen.prompts["clarify"], "most likely intent") {
		t.Errorf("router fallback must not produce a hint")
	}
	if res.Intent != model.IntentClarify || res.Confidence != 0 {
		t.Errorf("fallback classification = %s %.2f", res.Intent, res.Confidence)
	}
}

func TestClarificationFallbackQuestion(t *testing.T) {
	gen := newScripted(map[string]string{"intent": `{"intent": "clarify", "confidence": 0.9}`})
	gen.errs["clarify"] = &llmprovider.GenerationError{Kind: llmprovider.KindTransport, Err: errors.New("timeout")}
	f := newFixture(t, gen)

	res, err := f.uc.HandleMessage(context.Background(), "u1", "???")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if res.Response != QuestionFallback || res.Status != conversation.StatusOK {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestFoodClarification(t *testing.T) {
	tests := []struct {
		name    string
		food    string
		foodErr error
	}{
		{name: "empty items", food: `{"items": []}`},
		{name: "unparseable", food: "I think you had eggs"},
		{name: "generation failed", foodErr: &llmprovider.GenerationError{Kind: llmprovider.KindRateLimit, Err: llmprovider.ErrProviderRateLimited}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := newScripted(map[string]string{"intent": intentFood, "food": tt.food, "estimate": estimate250})
			if tt.foodErr != nil {
				gen.errs["food"] = tt.foodErr
			}
			f := newFixture(t, gen)

			res, err := f.uc.HandleMessage(context.Background(), "u1", "I ate stuff")
			if err != nil {
				t.Fatalf("HandleMessage: %v", err)
			}
			if res.Response != QuestionFoodItems || res.Stage != model.StageClarification {
				t.Errorf("unexpected result %+v", res)
			}
			if gen.count("estimate") != 0 || gen.count("clarify") != 0 {
				t.Errorf("estimate or clarify generation ran")
			}
			if n := len(f.records(t, store.CollectionFoodLogs, "u1")); n != 0 {
				t.Errorf("food logs = %d, want 0", n)
			}
		})
	}
}

func TestEstimationFailureIsSurfaced(t *testing.T) {
	gen := newScripted(map[string]string{"intent": intentFood, "food": eggsAndToast, "estimate": "not json"})
	f := newFixture(t, gen)

	res, err := f.uc.HandleMessage(context.Background(), "u1", "I ate 2 eggs and toast")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if res.Status != conversation.StatusRequestFailed || res.Response != ResponseFailed {
		t.Errorf("unexpected result %+v", res)
	}
	if n := len(f.records(t, store.CollectionFoodLogs, "u1")); n != 0 {
		t.Errorf("food logs = %d, want 0", n)
	}
}

func TestStoreFailureIsSurfaced(t *testing.T) {
	tests := []struct {
		name       string
		collection string
		replies    map[string]string
		msg        string
	}{
		{
			name:       "food log write",
			collection: store.CollectionFoodLogs,
			replies:    map[string]string{"intent": intentFood, "food": eggsAndToast, "estimate": estimate250},
			msg:        "I ate 2 eggs and toast",
		},
		{
			name:       "goal write",
			collection: store.CollectionGoals,
			replies:    map[string]string{"intent": intentGoal, "goal": `{"goal_type": "weight_loss", "target_calories": 1800}`},
			msg:        "I want to lose weight, 1800 calories a day",
		},
		{
			name:       "summary read",
			collection: store.CollectionFoodLogs,
			replies:    map[string]string{"intent": intentSummary},
			msg:        "How did I do this week?",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := memory.New()
			f := newFixtureOn(t, newScripted(tt.replies), failingStore{Store: mem, collection: tt.collection})

			res, err := f.uc.HandleMessage(context.Background(), "u1", tt.msg)
			if err != nil {
				t.Fatalf("HandleMessage: %v", err)
			}
			if res.Status != conversation.StatusRequestFailed || res.Response != ResponseFailed {
				t.Errorf("unexpected result %+v", res)
			}
			recs, err := mem.Query(context.Background(), tt.collection, store.QueryOptions{Filters: store.Filters{"user_id": "u1"}})
			if err != nil {
				t.Fatalf("Query: %v", err)
			}
			if len(recs) != 0 {
				t.Errorf("%s records = %d, want 0", tt.collection, len(recs))
			}
		})
	}
}

func TestClarificationKeepsBracketedText(t *testing.T) {
	const question = "Did you want to log a meal? Reply [1] to log food."
	f := newFixture(t, newScripted(map[string]string{
		"intent":  `{"intent": "clarify", "confidence": 0.9}`,
		"clarify": "<think>the user is vague</think>\n" + question + "\n",
	}))

	res, err := f.uc.HandleMessage(context.Background(), "u1", "hmm")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if res.Response != question || res.Status != conversation.StatusOK {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestSummary(t *testing.T) {
	f := newFixture(t, newScripted(map[string]string{"intent": intentSummary}))

	res, err := f.uc.HandleMessage(context.Background(), "u1", "How did I do this month?")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	want := "📊 Monthly Summary\n\n📅 Days logged: 0\n🔥 Average calories: 0 cal/day\n🎯 Goal adherence: 0%\n\nNo data logged for this period."
	if res.Response != want {
		t.Errorf("response = %q, want %q", res.Response, want)
	}
	if res.Metadata[MetaPeriod] != model.PeriodMonthly {
		t.Errorf("period = %v", res.Metadata[MetaPeriod])
	}

	f.gen.replies["intent"] = intentFood
	f.gen.replies["food"] = eggsAndToast
	f.gen.replies["estimate"] = estimate250
	if _, err := f.uc.HandleMessage(context.Background(), "u1", "I ate 2 eggs and toast"); err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}

	f.gen.replies["intent"] = intentSummary
	res, _ = f.uc.HandleMessage(context.Background(), "u1", "give me my weekly summary")
	if !strings.Contains(res.Response, "📊 Weekly Summary") || !strings.Contains(res.Response, "📅 Days logged: 1") ||
		!strings.Contains(res.Response, "🔥 Average calories: 250 cal/day") {
		t.Errorf("unexpected summary %q", res.Response)
	}
}

func TestDetectPeriod(t *testing.T) {
	tests := []struct {
		msg  string
		want model.Period
	}{
		{"daily summary please", model.PeriodDaily},
		{"what did I eat TODAY", model.PeriodDaily},
		{"monthly report", model.PeriodMonthly},
		{"how was last month", model.PeriodMonthly},
		{"summary", model.PeriodWeekly},
		{"how am I doing this week?", model.PeriodWeekly},
	}
	for _, tt := range tests {
		if got := DetectPeriod(tt.msg); got != tt.want {
			t.Errorf("DetectPeriod(%q) = %s, want %s", tt.msg, got, tt.want)
		}
	}
}

func TestEveryRunHasResponse(t *testing.T) {
	messages := []string{"", "🍕🍕🍕", strings.Repeat("long text ", 400), "{not json", "<think>x</think>"}
	replies := []string{"", "garbage", "<think>only thinking</think>", `{"intent": "log_food", "confidence": 0.99}`}

	for _, reply := range replies {
		for _, msg := range messages {
			gen := newScripted(map[string]string{
				"intent": reply, "food": reply, "goal": reply, "estimate": reply, "clarify": reply,
			})
			f := newFixture(t, gen)
			res, err := f.uc.HandleMessage(context.Background(), "u1", msg)
			if err != nil {
				t.Fatalf("HandleMessage(%q) with reply %q: %v", msg, reply, err)
			}
			if strings.TrimSpace(res.Response) == "" {
				t.Errorf("empty response for message %q with reply %q", msg, reply)
			}
		}
	}
}

func TestHandleMessageValidation(t *testing.T) {
	f := newFixture(t, newScripted(nil))

	tests := []struct {
		name    string
		userID  string
		message string
		field   string
	}{
		{"empty user", " ", "hello", "user_id"},
		{"too long", "u1", strings.Repeat("é", DefaultMaxMessageLength+1), "message"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := f.uc.HandleMessage(context.Background(), tt.userID, tt.message)
			var ve *model.ValidationError
			if !errors.As(err, &ve) || ve.Kind != model.ValidationBadInput || ve.Field != tt.field {
				t.Fatalf("err = %v, want bad_input on %s", err, tt.field)
			}
			if res.Response == "" {
				t.Errorf("rejected input must still carry a response")
			}
		})
	}
	if f.gen.count("intent") != 0 {
		t.Errorf("router ran for rejected input")
	}

	if _, err := f.uc.HandleMessage(context.Background(), "u1", strings.Repeat("é", DefaultMaxMessageLength)); err != nil {
		t.Errorf("message at the limit rejected: %v", err)
	}
}

func TestTransitionTable(t *testing.T) {
	allowed := [][2]model.Stage{
		{model.StageRouting, model.StageFoodLogging},
		{model.StageRouting, model.StageGoal},
		{model.StageRouting, model.StageSummary},
		{model.StageRouting, model.StageClarification},
		{model.StageFoodLogging, model.StageEstimating},
		{model.StageFoodLogging, model.StageClarification},
	}
	for _, e := range allowed {
		if !Allowed(e[0], e[1]) {
			t.Errorf("%s -> %s must be allowed", e[0], e[1])
		}
	}

	denied := [][2]model.Stage{
		{model.StageRouting, model.StageEstimating},
		{model.StageRouting, model.StageRouting},
		{model.StageFoodLogging, model.StageRouting},
		{model.StageEstimating, model.StageClarification},
		{model.StageGoal, model.StageClarification},
		{model.StageClarification, model.StageRouting},
	}
	for _, e := range denied {
		if Allowed(e[0], e[1]) {
			t.Errorf("%s -> %s must be denied", e[0], e[1])
		}
	}
}

func TestRunGuards(t *testing.T) {
	t.Run("illegal transition", func(t *testing.T) {
		f := newFixture(t, newScripted(nil))
		f.uc.stages[model.StageRouting] = func(context.Context, *conversation.State) model.Stage {
			return model.StageEstimating
		}
		res, _ := f.uc.HandleMessage(context.Background(), "u1", "hi")
		if res.Status != conversation.StatusRequestFailed || res.Response != ResponseFailed {
			t.Errorf("unexpected result %+v", res)
		}
	})

	t.Run("missing response gets default", func(t *testing.T) {
		f := newFixture(t, newScripted(nil))
		f.uc.stages[model.StageRouting] = func(context.Context, *conversation.State) model.Stage { return "" }
		res, _ := f.uc.HandleMessage(context.Background(), "u1", "hi")
		if res.Response != ResponseDefault || res.Status != conversation.StatusOK {
			t.Errorf("unexpected result %+v", res)
		}
	})

	t.Run("panic is a failed request", func(t *testing.T) {
		f := newFixture(t, newScripted(nil))
		f.uc.stages[model.StageRouting] = func(context.Context, *conversation.State) model.Stage { panic("boom") }
		res, err := f.uc.HandleMessage(context.Background(), "u1", "hi")
		if err != nil || res.Status != conversation.StatusRequestFailed || res.Response == "" {
			t.Errorf("unexpected result %+v, err %v", res, err)
		}
	})
}
