package http

import (
	"fitness-agent/internal/model"
	"fitness-agent/internal/reminder"
	"fitness-agent/pkg/response"
)

type mealReq struct {
	UserID   string `json:"-"`
	MealType string `json:"meal_type" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Day      string `json:"day"`
}

func (r mealReq) toInput() reminder.MealInput {
	return reminder.MealInput{
		UserID:   r.UserID,
		MealType: r.MealType,
		Time:     r.Time,
		Day:      r.Day,
	}
}

type weeklyReq struct {
	UserID string `json:"-"`
	// Pointer so that Monday (0) passes the required check.
	DayOfWeek *int `json:"day_of_week" binding:"required"`
}

func (r weeklyReq) toInput() reminder.WeeklyInput {
	return reminder.WeeklyInput{
		UserID:    r.UserID,
		DayOfWeek: *r.DayOfWeek,
	}
}

type reminderResp struct {
	ID              string            `json:"id"`
	UserID          string            `json:"user_id"`
	Type            string            `json:"type"`
	MealType        string            `json:"meal_type,omitempty"`
	ScheduledTime   response.DateTime `json:"scheduled_time"`
	CalendarEventID string            `json:"calendar_event_id"`
	Status          string            `json:"status"`
}

type listResp struct {
	Reminders []reminderResp `json:"reminders"`
}

func (h *handler) newReminderResp(r model.Reminder) reminderResp {
	return reminderResp{
		ID:              r.ID,
		UserID:          r.UserID,
		Type:            string(r.Type),
		MealType:        r.MealType,
		ScheduledTime:   response.DateTime(r.ScheduledTime),
		CalendarEventID: r.CalendarEventID,
		Status:          r.Status,
	}
}

func (h *handler) newListResp(rems []model.Reminder) listResp {
	out := listResp{Reminders: make([]reminderResp, 0, len(rems))}
	for _, r := range rems {
		out.Reminders = append(out.Reminders, h.newReminderResp(r))
	}
	return out
}
