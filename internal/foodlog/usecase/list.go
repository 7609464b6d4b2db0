package usecase

import (
	"context"

	"fitness-agent/internal/foodlog"
	"fitness-agent/internal/foodlog/repository"
	"fitness-agent/internal/model"
)

func (uc *implUseCase) List(ctx context.Context, input foodlog.ListInput) ([]model.FoodLog, error) {
	if input.UserID == "" {
		return nil, foodlog.ErrUserIDRequired
	}
	logs, err := uc.repo.ListFoodLogs(ctx, repository.ListFoodLogsOptions{
		UserID: input.UserID,
		Start:  input.Start,
		End:    input.End,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListFoodLogs: %v", err)
		return nil, err
	}
	return logs, nil
}
