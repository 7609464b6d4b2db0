package repository

import (
	"time"

	"fitness-agent/internal/model"
)

// CreateFoodLogOptions holds the fields of a new food log entry.
type CreateFoodLogOptions struct {
	UserID        string
	Timestamp     time.Time
	FoodItems     []model.FoodItem
	TotalCalories int
	Breakdown     []model.NutritionEntry
}

// ListFoodLogsOptions filters a user's logs. Zero Start/End are open bounds;
// both bounds are inclusive.
type ListFoodLogsOptions struct {
	UserID string
	Start  time.Time
	End    time.Time
}
