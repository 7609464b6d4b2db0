package mcp

const (
	ToolChat       = "chat"
	ToolGetSummary = "get_summary"
	ToolGetGoal    = "get_goal"
	ToolSetGoal    = "set_goal"

	contentTypeText = "text"
)
