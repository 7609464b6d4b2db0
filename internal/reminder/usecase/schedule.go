package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fitness-agent/internal/model"
	"fitness-agent/internal/reminder"
	"fitness-agent/internal/reminder/repository"
	"fitness-agent/pkg/datemath"
	"fitness-agent/pkg/gcalendar"
)

func (uc *implUseCase) ScheduleMeal(ctx context.Context, input reminder.MealInput) (model.Reminder, error) {
	if input.UserID == "" {
		return model.Reminder{}, model.NewBadInput("user_id", reminder.ErrUserIDRequired)
	}
	mealType := strings.ToLower(strings.TrimSpace(input.MealType))
	if !model.ValidMealType(mealType) {
		return model.Reminder{}, model.NewBadInput("meal_type", reminder.ErrInvalidMealType)
	}
	at, err := uc.resolveTime(input.Time, input.Day)
	if err != nil {
		return model.Reminder{}, model.NewBadInput("time", err)
	}

	return uc.schedule(ctx, repository.CreateReminderOptions{
		UserID:        input.UserID,
		Type:          model.ReminderMealLog,
		MealType:      mealType,
		ScheduledTime: at,
	}, fmt.Sprintf(mealTitleFormat, mealType), fmt.Sprintf(mealDescriptionFormat, mealType))
}

func (uc *implUseCase) ScheduleWeekly(ctx context.Context, input reminder.WeeklyInput) (model.Reminder, error) {
	if input.UserID == "" {
		return model.Reminder{}, model.NewBadInput("user_id", reminder.ErrUserIDRequired)
	}
	if input.DayOfWeek < 0 || input.DayOfWeek > 6 {
		return model.Reminder{}, model.NewBadInput("day_of_week", reminder.ErrInvalidDayOfWeek)
	}

	// Monday = 0 here, Sunday = 0 in time.Weekday.
	wd := time.Weekday((input.DayOfWeek + 1) % 7)
	at := uc.dates.NextWeekdayAt(uc.now(), wd, model.WeeklySummaryHour, 0)

	return uc.schedule(ctx, repository.CreateReminderOptions{
		UserID:        input.UserID,
		Type:          model.ReminderWeeklySummary,
		ScheduledTime: at,
	}, weeklyTitle, weeklyDescription)
}

// schedule books the calendar event, then records it. A failed record write
// removes the event again so the calendar holds no untracked reminders.
func (uc *implUseCase) schedule(ctx context.Context, opt repository.CreateReminderOptions, title, description string) (model.Reminder, error) {
	ev, err := uc.cal.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:   uc.calendarID,
		Summary:      title,
		Description:  description,
		StartTime:    opt.ScheduledTime,
		EndTime:      opt.ScheduledTime.Add(model.ReminderDuration),
		Timezone:     uc.dates.Location().String(),
		PopupMinutes: model.ReminderPopupMinutes,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.schedule CreateEvent: %v", err)
		return model.Reminder{}, fmt.Errorf("%w: %v", reminder.ErrCalendarUnavailable, err)
	}

	opt.CalendarEventID = ev.ID
	rem, err := uc.repo.CreateReminder(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.schedule CreateReminder: %v", err)
		if derr := uc.cal.DeleteEvent(ctx, uc.calendarID, ev.ID); derr != nil {
			uc.l.Warnf(ctx, "uc.schedule DeleteEvent %s: %v", ev.ID, derr)
		}
		return model.Reminder{}, err
	}
	return rem, nil
}

// resolveTime accepts RFC3339, or "HH:MM" on the relative day.
func (uc *implUseCase) resolveTime(clock, day string) (time.Time, error) {
	clock = strings.TrimSpace(clock)
	if clock == "" {
		return time.Time{}, reminder.ErrInvalidTime
	}
	if t, err := time.Parse(time.RFC3339, clock); err == nil {
		return t, nil
	}

	hour, minute, err := datemath.ParseClock(clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", reminder.ErrInvalidTime, err)
	}
	date, err := uc.dates.Parse(day, uc.now())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", reminder.ErrInvalidTime, err)
	}
	return uc.dates.At(date, hour, minute), nil
}
