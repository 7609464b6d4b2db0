package model

// Intent is the coarse category of a user request.
type Intent string

const (
	IntentLogFood     Intent = "log_food"
	IntentSetGoal     Intent = "set_goal"
	IntentGetSummary  Intent = "get_summary"
	IntentAskQuestion Intent = "ask_question"
	IntentClarify     Intent = "clarify"
)

// Intents lists every intent the router may classify into, in prompt order.
var Intents = []Intent{
	IntentLogFood,
	IntentSetGoal,
	IntentGetSummary,
	IntentAskQuestion,
	IntentClarify,
}

// IntentDescriptions is the one-line meaning of each intent shown to the model.
var IntentDescriptions = map[Intent]string{
	IntentLogFood:     "User wants to log food/meal",
	IntentSetGoal:     "User wants to set or update fitness goals",
	IntentGetSummary:  "User wants daily/weekly summary",
	IntentAskQuestion: "General fitness question",
	IntentClarify:     "Need more information",
}

// Valid reports whether i is one of Intents.
func (i Intent) Valid() bool {
	for _, v := range Intents {
		if v == i {
			return true
		}
	}
	return false
}

// Confidence thresholds for intent classification.
const (
	ConfidenceThresholdHigh   = 0.8
	ConfidenceThresholdMedium = 0.6
	ConfidenceThresholdLow    = 0.4
)
