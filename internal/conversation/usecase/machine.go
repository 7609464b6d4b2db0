package usecase

import (
	"context"
	"fmt"

	"fitness-agent/internal/conversation"
	"fitness-agent/internal/model"
)

// transitions is the complete stage graph. Stages without an entry are terminal.
var transitions = map[model.Stage][]model.Stage{
	model.StageRouting: {
		model.StageFoodLogging,
		model.StageGoal,
		model.StageSummary,
		model.StageClarification,
	},
	model.StageFoodLogging: {
		model.StageEstimating,
		model.StageClarification,
	},
}

// Allowed reports whether the graph has an edge from -> to.
func Allowed(from, to model.Stage) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// run drives st from routing to a terminal stage and returns that stage.
// An illegal transition stops the run with an error state. The returned
// state always carries a response.
func (uc *implUseCase) run(ctx context.Context, st *conversation.State) model.Stage {
	stage := model.StageRouting
	for hops := 0; ; hops++ {
		handle, ok := uc.stages[stage]
		if !ok {
			uc.fail(ctx, st, fmt.Errorf("%w: no handler for %s", conversation.ErrIllegalTransition, stage))
			break
		}

		next := handle(ctx, st)
		if next == "" {
			break
		}
		if !Allowed(stage, next) || hops >= MaxTransitions {
			uc.fail(ctx, st, fmt.Errorf("%w: %s -> %s", conversation.ErrIllegalTransition, stage, next))
			break
		}
		uc.l.Debugf(ctx, "%s: %s -> %s", LogPrefixRun, stage, next)
		stage = next
	}

	if st.Response == "" {
		uc.l.Warnf(ctx, "%s: stage %s left no response", LogPrefixRun, stage)
		st.Response = ResponseDefault
	}
	return stage
}

func (uc *implUseCase) fail(ctx context.Context, st *conversation.State, err error) {
	uc.l.Errorf(ctx, "%s: %v", LogPrefixRun, err)
	st.Fail(err, ResponseFailed)
}
