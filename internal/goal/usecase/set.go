package usecase

import (
	"context"

	"fitness-agent/internal/goal"
	"fitness-agent/internal/goal/repository"
	"fitness-agent/internal/model"
)

// Set upserts the user's goal by user id. Concurrent writers for the same user
// are last-write-wins.
func (uc *implUseCase) Set(ctx context.Context, input goal.SetInput) (goal.SetOutput, error) {
	if input.UserID == "" {
		return goal.SetOutput{}, model.NewBadInput("user_id", goal.ErrUserIDRequired)
	}
	goalType := input.GoalType
	if goalType == "" {
		goalType = model.GoalMaintenance
	}
	if !goalType.Valid() {
		return goal.SetOutput{}, model.NewBadInput("goal_type", model.ErrInvalidGoalType)
	}
	if err := input.Data.Validate(); err != nil {
		return goal.SetOutput{}, model.NewBadInput("goal_data", err)
	}

	existing, err := uc.repo.GetGoal(ctx, input.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Set GetGoal: %v", err)
		return goal.SetOutput{}, err
	}

	opt := repository.SaveGoalOptions{
		UserID:    input.UserID,
		GoalType:  goalType,
		Data:      input.Data,
		CreatedAt: uc.now(),
	}

	if existing.UserID != "" {
		g, err := uc.repo.UpdateGoal(ctx, opt)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Set UpdateGoal: %v", err)
			return goal.SetOutput{}, err
		}
		return goal.SetOutput{Goal: g}, nil
	}

	g, err := uc.repo.CreateGoal(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Set CreateGoal: %v", err)
		return goal.SetOutput{}, err
	}
	return goal.SetOutput{Goal: g, Created: true}, nil
}
