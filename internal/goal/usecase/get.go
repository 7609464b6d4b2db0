package usecase

import (
	"context"

	"fitness-agent/internal/goal"
	"fitness-agent/internal/model"
)

func (uc *implUseCase) Get(ctx context.Context, userID string) (model.Goal, error) {
	if userID == "" {
		return model.Goal{}, model.NewBadInput("user_id", goal.ErrUserIDRequired)
	}
	g, err := uc.repo.GetGoal(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Get GetGoal: %v", err)
		return model.Goal{}, err
	}
	if g.UserID == "" {
		return model.Goal{}, goal.ErrGoalNotFound
	}
	return g, nil
}
