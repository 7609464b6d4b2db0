package goal

import (
	"context"

	"fitness-agent/internal/model"
)

// UseCase manages the single live goal of each user.
type UseCase interface {
	// Set creates the user's goal or overwrites the existing one.
	Set(ctx context.Context, input SetInput) (SetOutput, error)

	// Get returns the user's goal or ErrGoalNotFound.
	Get(ctx context.Context, userID string) (model.Goal, error)
}
