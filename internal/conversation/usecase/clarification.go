package usecase

import (
	"context"
	"fmt"

	"fitness-agent/internal/conversation"
	"fitness-agent/internal/model"
	"fitness-agent/pkg/llmclean"
	"fitness-agent/pkg/llmprovider"
)

// clarification is terminal. A question set by an earlier stage wins over a
// generated one.
func (uc *implUseCase) clarification(ctx context.Context, st *conversation.State) model.Stage {
	st.NeedsClarification = true
	if q := st.ClarificationQuestion; q != nil && *q != "" {
		st.Response = *q
		return ""
	}

	raw, err := uc.llm.Generate(ctx, uc.clarificationPrompt(st), llmprovider.GenerateOptions{
		Temperature: ClarificationTemperature,
		MaxTokens:   ClarificationMaxTokens,
	})
	question := llmclean.StripReasoning(raw)
	if err != nil || question == "" {
		uc.l.Warnf(ctx, "%s: using fallback question: err=%v", LogPrefixClarification, err)
		question = QuestionFallback
	}

	st.ClarificationQuestion = &question
	st.Response = question
	return ""
}

// clarificationPrompt mentions the router's guess when it had a concrete one.
func (uc *implUseCase) clarificationPrompt(st *conversation.State) string {
	prompt := fmt.Sprintf(PromptClarification, st.Message())
	intent, conf, ok := st.Intent()
	if !ok || conf <= 0 || intent == model.IntentClarify || !intent.Valid() {
		return prompt
	}
	return prompt + fmt.Sprintf(PromptClarificationHint, intent, model.IntentDescriptions[intent], conf)
}
