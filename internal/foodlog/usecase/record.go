package usecase

import (
	"context"

	"fitness-agent/internal/foodlog"
	"fitness-agent/internal/foodlog/repository"
	"fitness-agent/internal/model"
)

// Record appends a food log entry. Entries are never updated afterwards.
func (uc *implUseCase) Record(ctx context.Context, input foodlog.RecordInput) (model.FoodLog, error) {
	if input.UserID == "" {
		return model.FoodLog{}, foodlog.ErrUserIDRequired
	}
	ts := input.Timestamp
	if ts.IsZero() {
		ts = uc.now()
	}

	entry, err := uc.repo.CreateFoodLog(ctx, repository.CreateFoodLogOptions{
		UserID:        input.UserID,
		Timestamp:     ts,
		FoodItems:     input.Items,
		TotalCalories: input.Estimate.Total,
		Breakdown:     input.Estimate.Breakdown,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: CreateFoodLog: %v", LogPrefixRecord, err)
		return model.FoodLog{}, err
	}
	return entry, nil
}
