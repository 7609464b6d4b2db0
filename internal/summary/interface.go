package summary

import (
	"context"
	"time"

	"fitness-agent/internal/model"
)

// UseCase aggregates a user's food logs against their goal.
type UseCase interface {
	// Generate summarizes logs with start <= timestamp <= end.
	Generate(ctx context.Context, userID string, start, end time.Time) (model.Summary, error)

	// ForPeriod summarizes the window of p ending now.
	ForPeriod(ctx context.Context, userID string, p model.Period) (model.Summary, error)
}
