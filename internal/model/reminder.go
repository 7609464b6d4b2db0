package model

import "time"

type ReminderType string

const (
	ReminderMealLog       ReminderType = "meal_log"
	ReminderWeeklySummary ReminderType = "weekly_summary"
)

// ReminderStatusScheduled is the only status a reminder is created with.
const ReminderStatusScheduled = "scheduled"

// Reminder timing.
const (
	ReminderDuration     = 15 * time.Minute
	ReminderPopupMinutes = 10
	WeeklySummaryHour    = 9
)

// Reminder is a calendar backed nudge, stored in the reminders collection.
type Reminder struct {
	ID              string       `json:"id,omitempty"`
	UserID          string       `json:"user_id"`
	Type            ReminderType `json:"type"`
	MealType        string       `json:"meal_type,omitempty"`
	ScheduledTime   time.Time    `json:"scheduled_time"`
	CalendarEventID string       `json:"calendar_event_id"`
	Status          string       `json:"status"`
}
