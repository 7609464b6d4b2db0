package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"fitness-agent/internal/conversation"
	"fitness-agent/internal/model"
	"fitness-agent/pkg/log"
)

// HandleMessage validates the input, runs the state machine on a fresh State
// and shapes the outcome. A panic inside a stage is reported as a failed request.
func (uc *implUseCase) HandleMessage(ctx context.Context, userID, message string) (res conversation.Result, err error) {
	if strings.TrimSpace(userID) == "" {
		return rejected(model.NewBadInput("user_id", conversation.ErrUserIDRequired))
	}
	if n := utf8.RuneCountInString(message); n > uc.maxMessageLength {
		return rejected(model.NewBadInput("message",
			fmt.Errorf("%w: %d characters, limit is %d", conversation.ErrMessageTooLong, n, uc.maxMessageLength)))
	}

	ctx = log.WithUserID(ctx, userID)
	st := conversation.NewState(userID, message, uc.now())

	defer func() {
		if r := recover(); r != nil {
			uc.fail(ctx, st, fmt.Errorf("%s: panic: %v", LogPrefixHandleMessage, r))
			res, err = uc.result(st, model.StageRouting), nil
		}
	}()

	stage := uc.run(ctx, st)
	return uc.result(st, stage), nil
}

func (uc *implUseCase) result(st *conversation.State, stage model.Stage) conversation.Result {
	res := conversation.Result{
		Response: st.Response,
		Stage:    stage,
		Metadata: make(map[string]any, len(st.Metadata)+1),
		Status:   conversation.StatusOK,
	}
	if intent, conf, ok := st.Intent(); ok {
		res.Intent = intent
		res.Confidence = conf
	}
	for k, v := range st.Metadata {
		res.Metadata[k] = v
	}
	if st.NeedsClarification {
		res.Metadata[MetaNeedsClarification] = true
	}
	if st.Err != nil {
		res.Status = conversation.StatusRequestFailed
	}
	return res
}

// rejected answers input refused before any processing. Status stays empty.
func rejected(ve *model.ValidationError) (conversation.Result, error) {
	return conversation.Result{
		Response: "Invalid request: " + ve.Err.Error(),
		Metadata: map[string]any{},
	}, ve
}
