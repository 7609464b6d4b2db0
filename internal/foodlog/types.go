package foodlog

import (
	"time"

	"fitness-agent/internal/model"
)

type RecordInput struct {
	UserID    string
	Timestamp time.Time
	Items     []model.FoodItem
	Estimate  model.CalorieEstimate
}

// ListInput selects logs by user and an inclusive time range. A zero bound is open.
type ListInput struct {
	UserID string
	Start  time.Time
	End    time.Time
}
