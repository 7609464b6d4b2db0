package usecase

import (
	"time"

	"fitness-agent/internal/foodlog"
	"fitness-agent/internal/goal"
	"fitness-agent/internal/summary"
	"fitness-agent/pkg/log"
)

type implUseCase struct {
	l     log.Logger
	logs  foodlog.UseCase
	goals goal.UseCase
	loc   *time.Location
	now   func() time.Time
}

var _ summary.UseCase = (*implUseCase)(nil)

// New creates the summary UseCase. Days are counted as calendar dates in loc;
// a nil loc means UTC.
func New(l log.Logger, logs foodlog.UseCase, goals goal.UseCase, loc *time.Location) *implUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &implUseCase{
		l:     l,
		logs:  logs,
		goals: goals,
		loc:   loc,
		now:   time.Now,
	}
}
