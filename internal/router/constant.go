package router

import "fitness-agent/internal/model"

// Log prefixes
const (
	LogPrefixRoute = "internal.router.Route"
)

// Router prompt; the intent list and format instructions are appended.
const (
	PromptRouterTask = "You are a fitness assistant. Classify the user's intent from their message.\n\n" +
		"User message: \"%s\"\n\n" +
		"Classify into one of these intents:\n"
)

// Router configuration
const (
	DefaultTemperature         = 0.1
	DefaultConfidenceThreshold = model.ConfidenceThresholdMedium
	MaxTokens                  = 256

	FallbackIntent     = model.IntentClarify
	FallbackConfidence = 0.0
)
