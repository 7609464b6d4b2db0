package usecase

import (
	"time"

	"fitness-agent/internal/goal"
	"fitness-agent/internal/goal/repository"
	"fitness-agent/pkg/log"
)

type implUseCase struct {
	l    log.Logger
	repo repository.Repository
	now  func() time.Time
}

var _ goal.UseCase = (*implUseCase)(nil)

// New creates the goal UseCase.
func New(l log.Logger, repo repository.Repository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
		now:  time.Now,
	}
}
