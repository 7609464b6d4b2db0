package extract

import (
	"encoding/json"
	"math"

	"fitness-agent/internal/model"
)

// GoalResult is the goal information stated in a message.
type GoalResult struct {
	GoalType model.GoalType
	Data     model.GoalData
}

const goalSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["goal_type"],
  "properties": {
    "goal_type": {"type": "string", "enum": ["weight_loss", "muscle_gain", "maintenance"]},
    "target_calories": {"type": ["integer", "null"]},
    "target_weight": {"type": ["number", "null"]},
    "target_date": {"type": ["string", "null"]}
  }
}`

// NewGoalExtractor builds the extractor for goal information.
func NewGoalExtractor() *Extractor[GoalResult] {
	e := mustExtractor[GoalResult]("goal", goalSchema,
		`{"goal_type": "weight_loss", "target_calories": 1800, "target_weight": 70.5, "target_date": "2025-12-31"}`,
		[]Field{
			{Name: "goal_type", Type: "string", Required: true, Description: "one of weight_loss, muscle_gain, maintenance"},
			{Name: "target_calories", Type: "integer or null", Description: "daily calorie target"},
			{Name: "target_weight", Type: "number or null", Description: "target weight in kg"},
			{Name: "target_date", Type: "string or null", Description: "target date as YYYY-MM-DD"},
		})

	// Integer-valued floats such as 1800.0 pass the schema but not json into *int.
	e.decode = func(doc []byte) (GoalResult, error) {
		var raw struct {
			GoalType       model.GoalType `json:"goal_type"`
			TargetCalories *float64       `json:"target_calories"`
			TargetWeight   *float64       `json:"target_weight"`
			TargetDate     *string        `json:"target_date"`
		}
		if err := json.Unmarshal(doc, &raw); err != nil {
			return GoalResult{}, err
		}

		out := GoalResult{
			GoalType: raw.GoalType,
			Data: model.GoalData{
				TargetWeight: raw.TargetWeight,
				TargetDate:   raw.TargetDate,
			},
		}
		if raw.TargetCalories != nil {
			c := int(math.Round(*raw.TargetCalories))
			out.Data.TargetCalories = &c
		}
		return out, nil
	}
	return e
}
