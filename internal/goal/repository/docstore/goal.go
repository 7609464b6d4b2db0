package docstore

import (
	"context"
	"time"

	"fitness-agent/internal/goal/repository"
	"fitness-agent/internal/model"
	"fitness-agent/internal/store"
)

const fieldUserID = "user_id"

func (r *implRepository) GetGoal(ctx context.Context, userID string) (model.Goal, error) {
	recs, err := r.db.Query(ctx, store.CollectionGoals, store.QueryOptions{
		Filters: store.Filters{fieldUserID: userID},
		Limit:   1,
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetGoal"), err)
		return model.Goal{}, err
	}
	if len(recs) == 0 {
		return model.Goal{}, nil
	}
	return decodeGoal(recs[0])
}

func (r *implRepository) CreateGoal(ctx context.Context, opt repository.SaveGoalOptions) (model.Goal, error) {
	rec, err := buildRecord(opt)
	if err != nil {
		return model.Goal{}, err
	}
	saved, err := r.db.Insert(ctx, store.CollectionGoals, rec)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateGoal"), err)
		return model.Goal{}, err
	}
	return decodeGoal(saved)
}

// UpdateGoal overwrites every field of the user's goal. Targets missing from
// opt are cleared, not kept.
func (r *implRepository) UpdateGoal(ctx context.Context, opt repository.SaveGoalOptions) (model.Goal, error) {
	rec, err := buildRecord(opt)
	if err != nil {
		return model.Goal{}, err
	}
	saved, err := r.db.Update(ctx, store.CollectionGoals, rec, store.Filters{fieldUserID: opt.UserID})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateGoal"), err)
		return model.Goal{}, err
	}
	return decodeGoal(saved)
}

func buildRecord(opt repository.SaveGoalOptions) (store.Record, error) {
	return store.ToRecord(model.Goal{
		UserID:         opt.UserID,
		GoalType:       opt.GoalType,
		TargetCalories: opt.Data.TargetCalories,
		TargetWeight:   opt.Data.TargetWeight,
		TargetDate:     opt.Data.TargetDate,
		CreatedAt:      opt.CreatedAt.UTC().Truncate(time.Second),
	})
}

func decodeGoal(rec store.Record) (model.Goal, error) {
	var g model.Goal
	if err := store.Decode(rec, &g); err != nil {
		return model.Goal{}, err
	}
	return g, nil
}
