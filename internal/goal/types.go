package goal

import "fitness-agent/internal/model"

// SetInput is a goal write. An empty GoalType means maintenance.
type SetInput struct {
	UserID   string
	GoalType model.GoalType
	Data     model.GoalData
}

type SetOutput struct {
	Goal    model.Goal
	Created bool
}
