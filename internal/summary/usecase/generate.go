package usecase

import (
	"context"
	"errors"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"fitness-agent/internal/foodlog"
	"fitness-agent/internal/goal"
	"fitness-agent/internal/model"
	"fitness-agent/internal/summary"
)

// Generate fetches the user's logs and goal concurrently, then aggregates.
func (uc *implUseCase) Generate(ctx context.Context, userID string, start, end time.Time) (model.Summary, error) {
	if userID == "" {
		return model.Summary{}, model.NewBadInput("user_id", summary.ErrUserIDRequired)
	}

	var (
		logs   []model.FoodLog
		target = model.DefaultTargetCalories
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		logs, err = uc.logs.List(gctx, foodlog.ListInput{UserID: userID, Start: start, End: end})
		return err
	})
	g.Go(func() error {
		gl, err := uc.goals.Get(gctx, userID)
		if errors.Is(err, goal.ErrGoalNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if gl.TargetCalories != nil {
			target = *gl.TargetCalories
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "uc.Generate: %v", err)
		return model.Summary{}, err
	}

	return Aggregate(logs, target, uc.loc), nil
}

func (uc *implUseCase) ForPeriod(ctx context.Context, userID string, p model.Period) (model.Summary, error) {
	start, end := p.Range(uc.now())
	return uc.Generate(ctx, userID, start, end)
}

// Aggregate computes the summary of already range-filtered logs.
func Aggregate(logs []model.FoodLog, target int, loc *time.Location) model.Summary {
	if len(logs) == 0 {
		return model.Summary{Insights: InsightNoData, TargetCalories: target}
	}

	total := 0
	days := make(map[string]struct{})
	for _, l := range logs {
		total += l.TotalCalories
		days[l.Timestamp.In(loc).Format("2006-01-02")] = struct{}{}
	}
	avg := float64(total) / float64(len(days))

	adherence := 0.0
	if target > 0 {
		adherence = math.Max(0, math.Min(100, avg/float64(target)*100))
	}

	return model.Summary{
		AvgCalories:    avg,
		TotalCalories:  total,
		DaysLogged:     len(days),
		GoalAdherence:  adherence,
		TargetCalories: target,
		Insights:       Insights(avg, target, len(days)),
	}
}
