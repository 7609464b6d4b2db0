package docstore

import (
	"context"
	"fmt"
	"time"

	"fitness-agent/internal/foodlog/repository"
	"fitness-agent/internal/model"
	"fitness-agent/internal/store"
)

const fieldTimestamp = "timestamp"

func (r *implRepository) CreateFoodLog(ctx context.Context, opt repository.CreateFoodLogOptions) (model.FoodLog, error) {
	entry := model.FoodLog{
		UserID:        opt.UserID,
		Timestamp:     normalize(opt.Timestamp),
		FoodItems:     opt.FoodItems,
		TotalCalories: opt.TotalCalories,
		Breakdown:     opt.Breakdown,
	}
	rec, err := store.ToRecord(entry)
	if err != nil {
		return model.FoodLog{}, fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}

	saved, err := r.db.Insert(ctx, store.CollectionFoodLogs, rec)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateFoodLog"), err)
		return model.FoodLog{}, err
	}

	var out model.FoodLog
	if err := store.Decode(saved, &out); err != nil {
		return model.FoodLog{}, fmt.Errorf("%w: %v", repository.ErrFailedToDecode, err)
	}
	return out, nil
}

// ListFoodLogs fetches all of the user's logs and applies the time range in
// process, since the store only filters on equality.
func (r *implRepository) ListFoodLogs(ctx context.Context, opt repository.ListFoodLogsOptions) ([]model.FoodLog, error) {
	recs, err := r.db.Query(ctx, store.CollectionFoodLogs, store.QueryOptions{
		Filters: store.Filters{"user_id": opt.UserID},
		OrderBy: fieldTimestamp,
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListFoodLogs"), err)
		return nil, err
	}

	logs := make([]model.FoodLog, 0, len(recs))
	for _, rec := range recs {
		var entry model.FoodLog
		if err := store.Decode(rec, &entry); err != nil {
			r.l.Warnf(ctx, "%s: skipping undecodable record %v: %v", r.dsn("ListFoodLogs"), rec[store.FieldID], err)
			continue
		}
		if !opt.Start.IsZero() && entry.Timestamp.Before(opt.Start) {
			continue
		}
		if !opt.End.IsZero() && entry.Timestamp.After(opt.End) {
			continue
		}
		logs = append(logs, entry)
	}
	return logs, nil
}

// normalize stores timestamps in UTC at second precision so the encoded form
// has a fixed width and sorts lexicographically.
func normalize(t time.Time) time.Time {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Truncate(time.Second)
}
