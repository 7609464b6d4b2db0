package usecase

import (
	"time"

	"fitness-agent/internal/foodlog"
	"fitness-agent/internal/foodlog/repository"
	"fitness-agent/pkg/llmprovider"
	"fitness-agent/pkg/log"
)

type implUseCase struct {
	l    log.Logger
	llm  llmprovider.Generator
	repo repository.Repository
	now  func() time.Time
}

var _ foodlog.UseCase = (*implUseCase)(nil)

// New creates the food log UseCase.
func New(l log.Logger, llm llmprovider.Generator, repo repository.Repository) *implUseCase {
	return &implUseCase{
		l:    l,
		llm:  llm,
		repo: repo,
		now:  time.Now,
	}
}
