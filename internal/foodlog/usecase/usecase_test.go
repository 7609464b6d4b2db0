package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"fitness-agent/internal/foodlog"
	"fitness-agent/internal/foodlog/repository/docstore"
	"fitness-agent/internal/model"
	"fitness-agent/internal/store/memory"
	"fitness-agent/pkg/llmprovider"
	"fitness-agent/pkg/log"
)

type jsonGenerator struct {
	text    string
	err     error
	prompts []string
}

func (g *jsonGenerator) Generate(ctx context.Context, prompt string, opts llmprovider.GenerateOptions) (string, error) {
	g.prompts = append(g.prompts, prompt)
	return g.text, g.err
}

func (g *jsonGenerator) GenerateJSON(ctx context.Context, prompt string, out any) error {
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return g.err
	}
	if err := json.Unmarshal([]byte(g.text), out); err != nil {
		return &llmprovider.GenerationError{Kind: llmprovider.KindMalformedOutput, Err: err}
	}
	return nil
}

func newTestUseCase(gen llmprovider.Generator) *implUseCase {
	l := log.NewNop()
	return New(l, gen, docstore.New(memory.New(), l))
}

var eggsAndToast = []model.FoodItem{
	{Name: "eggs", Quantity: 2, Unit: "pieces"},
	{Name: "toast", Quantity: 1.5, Unit: "slices"},
}

func TestBuildEstimatePrompt(t *testing.T) {
	p := BuildEstimatePrompt(eggsAndToast)
	if !strings.Contains(p, "- eggs: 2 pieces\n- toast: 1.5 slices") {
		t.Errorf("item lines missing from prompt:\n%s", p)
	}
	if !strings.HasPrefix(p, "Estimate calories and macronutrients for these food items:") {
		t.Errorf("unexpected prompt start:\n%s", p)
	}
	for _, field := range []string{`"total"`, `"breakdown"`, `"protein"`, `"carbs"`, `"fat"`} {
		if !strings.Contains(p, field) {
			t.Errorf("prompt missing %s", field)
		}
	}
}

func TestEstimate(t *testing.T) {
	tests := []struct {
		name    string
		gen     *jsonGenerator
		items   []model.FoodItem
		want    model.CalorieEstimate
		wantErr error
	}{
		{
			name:  "consistent total",
			gen:   &jsonGenerator{text: `{"total": 250, "breakdown": [{"name": "eggs", "quantity": 2, "unit": "pieces", "calories": 150, "protein": 12, "carbs": 1, "fat": 10}, {"name": "toast", "quantity": 1, "unit": "slices", "calories": 100, "protein": 3, "carbs": 18, "fat": 1}]}`},
			items: eggsAndToast,
			want: model.CalorieEstimate{Total: 250, Breakdown: []model.NutritionEntry{
				{Name: "eggs", Quantity: 2, Unit: "pieces", Calories: 150, Protein: 12, Carbs: 1, Fat: 10},
				{Name: "toast", Quantity: 1, Unit: "slices", Calories: 100, Protein: 3, Carbs: 18, Fat: 1},
			}},
		},
		{
			name:  "total recomputed from breakdown",
			gen:   &jsonGenerator{text: `{"total": 400, "breakdown": [{"name": "eggs", "calories": 150}, {"name": "toast", "calories": 100.4}]}`},
			items: eggsAndToast,
			want: model.CalorieEstimate{Total: 250, Breakdown: []model.NutritionEntry{
				{Name: "eggs", Calories: 150},
				{Name: "toast", Calories: 100.4},
			}},
		},
		{
			name:  "float total without breakdown",
			gen:   &jsonGenerator{text: `{"total": 319.6, "breakdown": []}`},
			items: eggsAndToast,
			want:  model.CalorieEstimate{Total: 320, Breakdown: []model.NutritionEntry{}},
		},
		{
			name:    "missing total",
			gen:     &jsonGenerator{text: `{"breakdown": []}`},
			items:   eggsAndToast,
			wantErr: foodlog.ErrEstimateFailed,
		},
		{
			name:    "no items",
			gen:     &jsonGenerator{},
			wantErr: foodlog.ErrNoFoodItems,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newTestUseCase(tt.gen).Estimate(context.Background(), tt.items)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("estimate mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEstimateGenerationFailure(t *testing.T) {
	genErr := &llmprovider.GenerationError{Kind: llmprovider.KindRateLimit, Err: llmprovider.ErrProviderRateLimited}
	_, err := newTestUseCase(&jsonGenerator{err: genErr}).Estimate(context.Background(), eggsAndToast)
	if !llmprovider.IsKind(err, llmprovider.KindRateLimit) {
		t.Fatalf("err = %v, want rate_limit GenerationError", err)
	}
}

func TestRecordAndList(t *testing.T) {
	uc := newTestUseCase(&jsonGenerator{})
	ctx := context.Background()
	base := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	for i, ts := range []time.Time{base.AddDate(0, 0, -10), base.AddDate(0, 0, -3), base} {
		_, err := uc.Record(ctx, foodlog.RecordInput{
			UserID:    "u1",
			Timestamp: ts,
			Items:     eggsAndToast,
			Estimate:  model.CalorieEstimate{Total: 100 * (i + 1)},
		})
		if err != nil {
			t.Fatalf("Record: %v", err)
		}
	}
	if _, err := uc.Record(ctx, foodlog.RecordInput{UserID: "u2", Timestamp: base, Estimate: model.CalorieEstimate{Total: 999}}); err != nil {
		t.Fatalf("Record: %v", err)
	}

	logs, err := uc.List(ctx, foodlog.ListInput{UserID: "u1", Start: base.AddDate(0, 0, -7), End: base})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	var totals []int
	for _, l := range logs {
		totals = append(totals, l.TotalCalories)
		if l.UserID != "u1" || l.ID == "" {
			t.Errorf("unexpected log %+v", l)
		}
	}
	if diff := cmp.Diff([]int{200, 300}, totals); diff != "" {
		t.Errorf("totals mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordTruncatesTimestamp(t *testing.T) {
	uc := newTestUseCase(&jsonGenerator{})
	loc := time.FixedZone("ICT", 7*3600)
	ts := time.Date(2024, 5, 10, 19, 30, 15, 987654321, loc)

	entry, err := uc.Record(context.Background(), foodlog.RecordInput{UserID: "u1", Timestamp: ts})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	want := time.Date(2024, 5, 10, 12, 30, 15, 0, time.UTC)
	if !entry.Timestamp.Equal(want) || entry.Timestamp.Location() != time.UTC {
		t.Errorf("timestamp = %v, want %v", entry.Timestamp, want)
	}
}

func TestRecordRequiresUser(t *testing.T) {
	_, err := newTestUseCase(&jsonGenerator{}).Record(context.Background(), foodlog.RecordInput{})
	if !errors.Is(err, foodlog.ErrUserIDRequired) {
		t.Fatalf("err = %v, want ErrUserIDRequired", err)
	}
}
