package repository

import (
	"context"

	"fitness-agent/internal/model"
)

// Repository is the data access interface for reminders.
type Repository interface {
	CreateReminder(ctx context.Context, opt CreateReminderOptions) (model.Reminder, error)
	ListReminders(ctx context.Context, opt ListRemindersOptions) ([]model.Reminder, error)
}
