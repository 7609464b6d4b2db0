package usecase

import (
	"context"
	"time"

	"fitness-agent/internal/conversation"
	"fitness-agent/internal/extract"
	"fitness-agent/internal/foodlog"
	"fitness-agent/internal/goal"
	"fitness-agent/internal/model"
	"fitness-agent/internal/router"
	"fitness-agent/internal/summary"
	"fitness-agent/pkg/llmprovider"
	"fitness-agent/pkg/log"
)

// DefaultMaxMessageLength bounds a message in runes.
const DefaultMaxMessageLength = 4000

// stageFunc runs one stage and returns the next one, or "" when the stage is terminal.
type stageFunc func(ctx context.Context, st *conversation.State) model.Stage

type implUseCase struct {
	l       log.Logger
	llm     llmprovider.Generator
	router  router.Router
	foods   foodlog.UseCase
	goals   goal.UseCase
	summary summary.UseCase

	foodExtractor *extract.Extractor[[]model.FoodItem]
	goalExtractor *extract.Extractor[extract.GoalResult]

	stages           map[model.Stage]stageFunc
	maxMessageLength int
	now              func() time.Time
}

var _ conversation.UseCase = (*implUseCase)(nil)

// Options tunes the conversation UseCase. Zero values select the defaults.
type Options struct {
	MaxMessageLength int
}

// New wires the stage handlers around the router and the domain use cases.
func New(
	l log.Logger,
	llm llmprovider.Generator,
	r router.Router,
	foods foodlog.UseCase,
	goals goal.UseCase,
	sum summary.UseCase,
	opts Options,
) *implUseCase {
	if opts.MaxMessageLength <= 0 {
		opts.MaxMessageLength = DefaultMaxMessageLength
	}
	uc := &implUseCase{
		l:                l,
		llm:              llm,
		router:           r,
		foods:            foods,
		goals:            goals,
		summary:          sum,
		foodExtractor:    extract.NewFoodItemsExtractor(),
		goalExtractor:    extract.NewGoalExtractor(),
		maxMessageLength: opts.MaxMessageLength,
		now:              time.Now,
	}
	uc.stages = map[model.Stage]stageFunc{
		model.StageRouting:       uc.routing,
		model.StageFoodLogging:   uc.foodLogging,
		model.StageEstimating:    uc.estimating,
		model.StageGoal:          uc.setGoal,
		model.StageSummary:       uc.summarize,
		model.StageClarification: uc.clarification,
	}
	return uc
}
