package usecase

import (
	"context"

	"fitness-agent/internal/model"
	"fitness-agent/internal/reminder"
	"fitness-agent/internal/reminder/repository"
)

func (uc *implUseCase) List(ctx context.Context, userID string) ([]model.Reminder, error) {
	if userID == "" {
		return nil, model.NewBadInput("user_id", reminder.ErrUserIDRequired)
	}
	rems, err := uc.repo.ListReminders(ctx, repository.ListRemindersOptions{UserID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListReminders: %v", err)
		return nil, err
	}
	return rems, nil
}
