package docstore

import (
	"context"
	"time"

	"fitness-agent/internal/model"
	"fitness-agent/internal/reminder/repository"
	"fitness-agent/internal/store"
)

const (
	fieldUserID        = "user_id"
	fieldScheduledTime = "scheduled_time"
)

func (r *implRepository) CreateReminder(ctx context.Context, opt repository.CreateReminderOptions) (model.Reminder, error) {
	// UTC at second precision keeps scheduled_time sortable as text.
	rec, err := store.ToRecord(model.Reminder{
		UserID:          opt.UserID,
		Type:            opt.Type,
		MealType:        opt.MealType,
		ScheduledTime:   opt.ScheduledTime.UTC().Truncate(time.Second),
		CalendarEventID: opt.CalendarEventID,
		Status:          model.ReminderStatusScheduled,
	})
	if err != nil {
		return model.Reminder{}, err
	}

	saved, err := r.db.Insert(ctx, store.CollectionReminders, rec)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateReminder"), err)
		return model.Reminder{}, err
	}

	var out model.Reminder
	if err := store.Decode(saved, &out); err != nil {
		return model.Reminder{}, err
	}
	return out, nil
}

func (r *implRepository) ListReminders(ctx context.Context, opt repository.ListRemindersOptions) ([]model.Reminder, error) {
	recs, err := r.db.Query(ctx, store.CollectionReminders, store.QueryOptions{
		Filters: store.Filters{fieldUserID: opt.UserID},
		OrderBy: fieldScheduledTime,
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListReminders"), err)
		return nil, err
	}

	out := make([]model.Reminder, 0, len(recs))
	for _, rec := range recs {
		var rem model.Reminder
		if err := store.Decode(rec, &rem); err != nil {
			return nil, err
		}
		out = append(out, rem)
	}
	return out, nil
}
