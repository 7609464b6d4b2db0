package usecase

// Log prefixes
const (
	LogPrefixHandleMessage = "internal.conversation.HandleMessage"
	LogPrefixRun           = "internal.conversation.run"
	LogPrefixFood          = "internal.conversation.foodLogging"
	LogPrefixEstimating    = "internal.conversation.estimating"
	LogPrefixGoal          = "internal.conversation.goal"
	LogPrefixSummary       = "internal.conversation.summary"
	LogPrefixClarification = "internal.conversation.clarification"
)

// Prompts. Extractor format instructions are appended to the food and goal prompts.
const (
	PromptParseFood = "Extract food items from the user's message.\n\n" +
		"User message: \"%s\"\n\n" +
		"Extract each food item with:\n" +
		"- name: food name\n" +
		"- quantity: numeric amount\n" +
		"- unit: measurement unit (grams, cups, pieces, etc.)\n\n" +
		"If you cannot parse any food items, return an empty list."

	PromptExtractGoal = "Extract fitness goal information from the user's message.\n\n" +
		"User message: \"%s\""

	PromptClarification = "The user's message is unclear. Generate a helpful clarification question.\n\n" +
		"User message: \"%s\"\n\n" +
		"Generate a friendly question to clarify what the user wants to do.\n" +
		"Focus on understanding if they want to:\n" +
		"- Log food\n" +
		"- Set/update goals\n" +
		"- Get a summary\n" +
		"- Ask a question\n\n" +
		"Respond with a single clarification question only (no JSON)."

	PromptClarificationHint = "\n\nThe most likely intent was %q (%s) with confidence %.2f. " +
		"If it fits, ask whether that is what they meant."
)

// Replies
const (
	QuestionFoodItems = "I couldn't understand the food items. Could you please specify what you ate and how much?"
	QuestionFallback  = "Could you tell me a bit more about what you'd like to do? For example, log a meal or check your weekly summary."

	ResponseFoodLogged  = "✅ Logged! Total: %d calories\n\nBreakdown:\n%s"
	ResponseGoalSet     = "✅ Goal set successfully!"
	ResponseGoalUpdated = "✅ Goal updated successfully!"
	ResponseGoalInvalid = "⚠️ I couldn't save that goal: %v"
	ResponseSummary     = "📊 %s Summary\n\n📅 Days logged: %d\n🔥 Average calories: %.0f cal/day\n🎯 Goal adherence: %.0f%%\n\n%s"
	ResponseDefault     = "I'm not sure how to help with that."
	ResponseFailed      = "Sorry, something went wrong while processing your request. Please try again."
)

// Metadata keys
const (
	MetaEstimate           = "estimated_calories"
	MetaFoodLogID          = "food_log_id"
	MetaGoal               = "goal"
	MetaSummary            = "summary"
	MetaPeriod             = "period"
	MetaNeedsClarification = "needs_clarification"
)

// Generation settings
const (
	ExtractionTemperature    = 0.3
	ClarificationTemperature = 0.7
	ExtractionMaxTokens      = 1024
	ClarificationMaxTokens   = 256

	// routing -> food_logging -> estimating is the longest path.
	MaxTransitions = 2
)
