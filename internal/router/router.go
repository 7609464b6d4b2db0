package router

import (
	"context"
	"fmt"
	"strings"

	"fitness-agent/internal/model"
	"fitness-agent/pkg/llmclean"
	"fitness-agent/pkg/llmprovider"
)

// Route classifies message. It never fails: any generation, cleaning or
// parsing problem yields the clarify fallback with NeedsClarification set.
func (r *IntentRouter) Route(ctx context.Context, message string) Decision {
	raw, err := r.gen.Generate(ctx, r.BuildPrompt(message), llmprovider.GenerateOptions{
		Temperature: r.opts.Temperature,
		MaxTokens:   MaxTokens,
	})
	if err != nil {
		r.l.Warnf(ctx, "%s: generate failed, asking for clarification: %v", LogPrefixRoute, err)
		return fallback()
	}

	res, err := r.extractor.Parse(llmclean.Clean(raw))
	if err != nil {
		r.l.Warnf(ctx, "%s: unparseable classification, asking for clarification: %v", LogPrefixRoute, err)
		return fallback()
	}

	stage := decide(res.Intent, res.Confidence, r.opts.ConfidenceThreshold)
	r.l.Debugf(ctx, "%s: intent=%s confidence=%.2f stage=%s", LogPrefixRoute, res.Intent, res.Confidence, stage)

	return Decision{
		Intent:     res.Intent,
		Confidence: res.Confidence,
		Stage:      stage,
	}
}

// BuildPrompt renders the classification prompt for message. Every intent is
// listed on every call.
func (r *IntentRouter) BuildPrompt(message string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, PromptRouterTask, message)
	for _, in := range model.Intents {
		fmt.Fprintf(&sb, "- %s: %s\n", in, model.IntentDescriptions[in])
	}
	return r.extractor.BuildPrompt(sb.String())
}

// Decide maps a classification to the next stage using the default threshold.
func Decide(intent model.Intent, confidence float64) model.Stage {
	return decide(intent, confidence, DefaultConfidenceThreshold)
}

func decide(intent model.Intent, confidence, threshold float64) model.Stage {
	if confidence < threshold {
		return model.StageClarification
	}
	switch intent {
	case model.IntentLogFood:
		return model.StageFoodLogging
	case model.IntentSetGoal:
		return model.StageGoal
	case model.IntentGetSummary:
		return model.StageSummary
	default:
		return model.StageClarification
	}
}

func fallback() Decision {
	return Decision{
		Intent:             FallbackIntent,
		Confidence:         FallbackConfidence,
		NeedsClarification: true,
		Stage:              model.StageClarification,
	}
}
