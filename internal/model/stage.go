package model

// Stage is one named step of the conversation state machine.
type Stage string

const (
	StageRouting       Stage = "routing"
	StageFoodLogging   Stage = "food_logging"
	StageEstimating    Stage = "estimating"
	StageGoal          Stage = "goal"
	StageSummary       Stage = "summary"
	StageClarification Stage = "clarification"
)
