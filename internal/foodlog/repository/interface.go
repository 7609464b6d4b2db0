package repository

import (
	"context"

	"fitness-agent/internal/model"
)

// Repository is the data access interface for food logs.
type Repository interface {
	CreateFoodLog(ctx context.Context, opt CreateFoodLogOptions) (model.FoodLog, error)
	ListFoodLogs(ctx context.Context, opt ListFoodLogsOptions) ([]model.FoodLog, error)
}
