package repository

import (
	"context"

	"fitness-agent/internal/model"
)

// Repository is the data access interface for goals. Goals are keyed by user id.
type Repository interface {
	// GetGoal returns the user's goal, or a zero Goal when there is none.
	GetGoal(ctx context.Context, userID string) (model.Goal, error)
	CreateGoal(ctx context.Context, opt SaveGoalOptions) (model.Goal, error)
	UpdateGoal(ctx context.Context, opt SaveGoalOptions) (model.Goal, error)
}
