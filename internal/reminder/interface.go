package reminder

import (
	"context"

	"fitness-agent/internal/model"
)

// UseCase schedules reminders as calendar events and keeps a record of each.
type UseCase interface {
	ScheduleMeal(ctx context.Context, input MealInput) (model.Reminder, error)

	// ScheduleWeekly books the weekly summary on the next given weekday at 09:00.
	ScheduleWeekly(ctx context.Context, input WeeklyInput) (model.Reminder, error)

	// List returns the user's reminders ordered by scheduled time.
	List(ctx context.Context, userID string) ([]model.Reminder, error)
}
