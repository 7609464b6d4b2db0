package foodlog

import (
	"context"

	"fitness-agent/internal/model"
)

// UseCase is the food logging domain: calorie estimation and the food log history.
type UseCase interface {
	// Estimate asks the model for calories and macros of items.
	Estimate(ctx context.Context, items []model.FoodItem) (model.CalorieEstimate, error)

	// Record appends one food log entry for a user.
	Record(ctx context.Context, input RecordInput) (model.FoodLog, error)

	// List returns the user's food logs with start <= timestamp <= end.
	List(ctx context.Context, input ListInput) ([]model.FoodLog, error)
}
