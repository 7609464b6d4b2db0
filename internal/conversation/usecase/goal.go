package usecase

import (
	"context"
	"errors"
	"fmt"

	"fitness-agent/internal/conversation"
	"fitness-agent/internal/extract"
	"fitness-agent/internal/goal"
	"fitness-agent/internal/model"
	"fitness-agent/pkg/llmclean"
	"fitness-agent/pkg/llmprovider"
)

// setGoal extracts what it can from the message and upserts the user's goal.
// Unextractable messages still save a maintenance goal.
func (uc *implUseCase) setGoal(ctx context.Context, st *conversation.State) model.Stage {
	if res, err := uc.extractGoal(ctx, st.Message()); err != nil {
		uc.l.Warnf(ctx, "%s: extract: %v", LogPrefixGoal, err)
	} else {
		st.GoalType = &res.GoalType
		st.GoalData = &res.Data
	}

	in := goal.SetInput{UserID: st.UserID()}
	if st.GoalType != nil {
		in.GoalType = *st.GoalType
	}
	if st.GoalData != nil {
		in.Data = *st.GoalData
	}

	out, err := uc.goals.Set(ctx, in)
	var ve *model.ValidationError
	switch {
	case errors.As(err, &ve):
		uc.l.Warnf(ctx, "%s: rejected goal: %v", LogPrefixGoal, err)
		st.Response = fmt.Sprintf(ResponseGoalInvalid, ve.Err)
		return ""
	case err != nil:
		uc.l.Errorf(ctx, "%s: Set: %v", LogPrefixGoal, err)
		st.Fail(err, ResponseFailed)
		return ""
	}

	st.GoalType = &out.Goal.GoalType
	st.SetMeta(MetaGoal, out.Goal)
	if out.Created {
		st.Response = ResponseGoalSet
	} else {
		st.Response = ResponseGoalUpdated
	}
	return ""
}

func (uc *implUseCase) extractGoal(ctx context.Context, message string) (extract.GoalResult, error) {
	prompt := uc.goalExtractor.BuildPrompt(fmt.Sprintf(PromptExtractGoal, message))
	raw, err := uc.llm.Generate(ctx, prompt, llmprovider.GenerateOptions{
		Temperature: ExtractionTemperature,
		MaxTokens:   ExtractionMaxTokens,
	})
	if err != nil {
		return extract.GoalResult{}, err
	}
	return uc.goalExtractor.Parse(llmclean.Clean(raw))
}
