package usecase

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"fitness-agent/internal/foodlog"
	"fitness-agent/internal/model"
)

// estimateResp is the shape the estimation prompt asks for. Total is a float
// because models often answer 250.0.
type estimateResp struct {
	Total     *float64               `json:"total"`
	Breakdown []model.NutritionEntry `json:"breakdown"`
}

// Estimate runs the calorie estimation prompt through GenerateJSON. When the
// model's total disagrees with its own breakdown, the breakdown sum wins.
func (uc *implUseCase) Estimate(ctx context.Context, items []model.FoodItem) (model.CalorieEstimate, error) {
	if len(items) == 0 {
		return model.CalorieEstimate{}, foodlog.ErrNoFoodItems
	}

	var resp estimateResp
	if err := uc.llm.GenerateJSON(ctx, BuildEstimatePrompt(items), &resp); err != nil {
		uc.l.Errorf(ctx, "%s: GenerateJSON: %v", LogPrefixEstimate, err)
		return model.CalorieEstimate{}, err
	}
	if resp.Total == nil {
		uc.l.Errorf(ctx, "%s: response has no total", LogPrefixEstimate)
		return model.CalorieEstimate{}, fmt.Errorf("%w: missing total", foodlog.ErrEstimateFailed)
	}
	if *resp.Total < 0 {
		return model.CalorieEstimate{}, fmt.Errorf("%w: negative total %v", foodlog.ErrEstimateFailed, *resp.Total)
	}

	total := int(math.Round(*resp.Total))
	if len(resp.Breakdown) > 0 {
		sum := int(math.Round(sumCalories(resp.Breakdown)))
		if sum != total {
			uc.l.Warnf(ctx, "%s: model total %d disagrees with breakdown sum %d, using the sum", LogPrefixEstimate, total, sum)
			total = sum
		}
	}

	return model.CalorieEstimate{Total: total, Breakdown: resp.Breakdown}, nil
}

// BuildEstimatePrompt renders one "- name: qty unit" line per item into the
// estimation prompt.
func BuildEstimatePrompt(items []model.FoodItem) string {
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = fmt.Sprintf("- %s: %s %s", it.Name, strconv.FormatFloat(it.Quantity, 'f', -1, 64), it.Unit)
	}
	return fmt.Sprintf(PromptEstimateCalories, strings.Join(lines, "\n"))
}

func sumCalories(entries []model.NutritionEntry) float64 {
	var sum float64
	for _, e := range entries {
		sum += e.Calories
	}
	return sum
}
