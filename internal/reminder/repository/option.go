package repository

import (
	"time"

	"fitness-agent/internal/model"
)

type CreateReminderOptions struct {
	UserID          string
	Type            model.ReminderType
	MealType        string
	ScheduledTime   time.Time
	CalendarEventID string
}

type ListRemindersOptions struct {
	UserID string
}
