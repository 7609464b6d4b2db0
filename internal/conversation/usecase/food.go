package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"fitness-agent/internal/conversation"
	"fitness-agent/internal/foodlog"
	"fitness-agent/internal/model"
	"fitness-agent/pkg/llmclean"
	"fitness-agent/pkg/llmprovider"
)

// foodLogging parses food items. No items, or an unusable reply, sends the
// run to clarification without estimating.
func (uc *implUseCase) foodLogging(ctx context.Context, st *conversation.State) model.Stage {
	items, err := uc.parseFoodItems(ctx, st.Message())
	st.FoodItemsParsed = true
	if err != nil {
		uc.l.Warnf(ctx, "%s: %v", LogPrefixFood, err)
		st.FoodItems = []model.FoodItem{}
		st.Clarify(QuestionFoodItems)
		return model.StageClarification
	}

	st.FoodItems = items
	if len(items) == 0 {
		st.Clarify(QuestionFoodItems)
		return model.StageClarification
	}
	st.NeedsClarification = false
	return model.StageEstimating
}

func (uc *implUseCase) parseFoodItems(ctx context.Context, message string) ([]model.FoodItem, error) {
	prompt := uc.foodExtractor.BuildPrompt(fmt.Sprintf(PromptParseFood, message))
	raw, err := uc.llm.Generate(ctx, prompt, llmprovider.GenerateOptions{
		Temperature: ExtractionTemperature,
		MaxTokens:   ExtractionMaxTokens,
	})
	if err != nil {
		return nil, err
	}
	return uc.foodExtractor.Parse(llmclean.Clean(raw))
}

// estimating prices the parsed items and appends the food log. Both failures
// are surfaced: there is no safe reply without a stored log.
func (uc *implUseCase) estimating(ctx context.Context, st *conversation.State) model.Stage {
	est, err := uc.foods.Estimate(ctx, st.FoodItems)
	if err != nil {
		uc.l.Errorf(ctx, "%s: Estimate: %v", LogPrefixEstimating, err)
		st.Fail(err, ResponseFailed)
		return ""
	}
	st.EstimatedCalories = &est
	st.SetMeta(MetaEstimate, est)

	entry, err := uc.foods.Record(ctx, foodlog.RecordInput{
		UserID:    st.UserID(),
		Timestamp: st.Timestamp(),
		Items:     st.FoodItems,
		Estimate:  est,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: Record: %v", LogPrefixEstimating, err)
		st.Fail(err, ResponseFailed)
		return ""
	}
	st.SetMeta(MetaFoodLogID, entry.ID)

	st.Response = fmt.Sprintf(ResponseFoodLogged, est.Total, formatBreakdown(est.Breakdown))
	return ""
}

func formatBreakdown(entries []model.NutritionEntry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, fmt.Sprintf("%s (%s cal)", e.Name, strconv.FormatFloat(e.Calories, 'f', -1, 64)))
	}
	return strings.Join(parts, ", ")
}
