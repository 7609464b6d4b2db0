package http

import (
	"fitness-agent/internal/goal"
	"fitness-agent/internal/model"
	pkgErrors "fitness-agent/pkg/errors"
	"fitness-agent/pkg/response"
)

type setReq struct {
	UserID         string   `json:"-"`
	GoalType       string   `json:"goal_type" binding:"required"`
	TargetCalories *int     `json:"target_calories"`
	TargetWeight   *float64 `json:"target_weight"`
	TargetDate     *string  `json:"target_date"`
}

func (r setReq) data() model.GoalData {
	return model.GoalData{
		TargetCalories: r.TargetCalories,
		TargetWeight:   r.TargetWeight,
		TargetDate:     r.TargetDate,
	}
}

func (r setReq) validate() error {
	if !model.GoalType(r.GoalType).Valid() {
		return pkgErrors.NewHTTPError(110003, model.ErrInvalidGoalType.Error())
	}
	if err := r.data().Validate(); err != nil {
		return pkgErrors.NewHTTPError(110003, err.Error())
	}
	return nil
}

func (r setReq) toInput() goal.SetInput {
	return goal.SetInput{
		UserID:   r.UserID,
		GoalType: model.GoalType(r.GoalType),
		Data:     r.data(),
	}
}

type goalResp struct {
	UserID         string            `json:"user_id"`
	GoalType       string            `json:"goal_type"`
	TargetCalories *int              `json:"target_calories"`
	TargetWeight   *float64          `json:"target_weight"`
	TargetDate     *string           `json:"target_date"`
	CreatedAt      response.DateTime `json:"created_at"`
}

func (h *handler) newGoalResp(g model.Goal) goalResp {
	return goalResp{
		UserID:         g.UserID,
		GoalType:       string(g.GoalType),
		TargetCalories: g.TargetCalories,
		TargetWeight:   g.TargetWeight,
		TargetDate:     g.TargetDate,
		CreatedAt:      response.DateTime(g.CreatedAt),
	}
}
