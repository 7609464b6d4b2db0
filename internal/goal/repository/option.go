package repository

import (
	"time"

	"fitness-agent/internal/model"
)

// SaveGoalOptions holds every field of a goal write. Absent targets are stored as null.
type SaveGoalOptions struct {
	UserID    string
	GoalType  model.GoalType
	Data      model.GoalData
	CreatedAt time.Time
}
