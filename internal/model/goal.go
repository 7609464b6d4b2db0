package model

import "time"

// GoalType is the kind of fitness goal a user pursues.
type GoalType string

const (
	GoalWeightLoss  GoalType = "weight_loss"
	GoalMuscleGain  GoalType = "muscle_gain"
	GoalMaintenance GoalType = "maintenance"
)

// GoalTypes lists every accepted goal type.
var GoalTypes = []GoalType{GoalWeightLoss, GoalMuscleGain, GoalMaintenance}

// Valid reports whether g is one of GoalTypes.
func (g GoalType) Valid() bool {
	for _, v := range GoalTypes {
		if v == g {
			return true
		}
	}
	return false
}

// Bounds accepted for goal targets.
const (
	MinCalories = 0
	MaxCalories = 10000
	MinWeightKg = 20.0
	MaxWeightKg = 300.0

	DefaultTargetCalories = 2000
)

// GoalData holds the optional targets of a goal.
type GoalData struct {
	TargetCalories *int     `json:"target_calories"`
	TargetWeight   *float64 `json:"target_weight"`
	TargetDate     *string  `json:"target_date"`
}

// Validate checks the targets that are present are within bounds.
func (d GoalData) Validate() error {
	if d.TargetCalories != nil && (*d.TargetCalories < MinCalories || *d.TargetCalories > MaxCalories) {
		return ErrCaloriesOutOfRange
	}
	if d.TargetWeight != nil && (*d.TargetWeight < MinWeightKg || *d.TargetWeight > MaxWeightKg) {
		return ErrWeightOutOfRange
	}
	return nil
}

// Goal is the single live goal of a user.
type Goal struct {
	ID             string    `json:"id,omitempty"`
	UserID         string    `json:"user_id"`
	GoalType       GoalType  `json:"goal_type"`
	TargetCalories *int      `json:"target_calories"`
	TargetWeight   *float64  `json:"target_weight"`
	TargetDate     *string   `json:"target_date"`
	CreatedAt      time.Time `json:"created_at"`
}

// Data returns the targets of g.
func (g Goal) Data() GoalData {
	return GoalData{
		TargetCalories: g.TargetCalories,
		TargetWeight:   g.TargetWeight,
		TargetDate:     g.TargetDate,
	}
}
