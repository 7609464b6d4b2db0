package usecase

import (
	"context"

	"fitness-agent/internal/conversation"
	"fitness-agent/internal/model"
)

func (uc *implUseCase) routing(ctx context.Context, st *conversation.State) model.Stage {
	d := uc.router.Route(ctx, st.Message())
	if err := st.SetIntent(d.Intent, d.Confidence); err != nil {
		uc.fail(ctx, st, err)
		return ""
	}
	if d.NeedsClarification {
		st.NeedsClarification = true
	}
	return d.Stage
}
