package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/ThinkInAIXYZ/go-mcp/protocol"

	"fitness-agent/internal/conversation"
	"fitness-agent/internal/model"
)

type chatParams struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

type userParams struct {
	UserID string `json:"user_id"`
}

type summaryParams struct {
	UserID string `json:"user_id"`
	Period string `json:"period,omitempty"`
}

type setGoalParams struct {
	UserID         string   `json:"user_id"`
	GoalType       string   `json:"goal_type,omitempty"`
	TargetCalories *int     `json:"target_calories,omitempty"`
	TargetWeight   *float64 `json:"target_weight,omitempty"`
	TargetDate     *string  `json:"target_date,omitempty"`
}

type chatResult struct {
	Response   string         `json:"response"`
	Intent     string         `json:"intent,omitempty"`
	Confidence float64        `json:"confidence"`
	Status     string         `json:"status"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

func newChatResult(res conversation.Result) chatResult {
	return chatResult{
		Response:   res.Response,
		Intent:     string(res.Intent),
		Confidence: res.Confidence,
		Status:     string(res.Status),
		Metadata:   res.Metadata,
	}
}

type summaryResult struct {
	Period model.Period `json:"period"`
	model.Summary
}

type goalResult struct {
	Goal    model.Goal `json:"goal"`
	Created bool       `json:"created"`
}

// toolInfo describes a tool for GET /mcp/tools.
type toolInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Arguments   []string `json:"arguments"`
}

// extractParams round-trips the loosely typed arguments through JSON into target.
func extractParams(req *protocol.CallToolRequest, target any) error {
	raw, err := json.Marshal(req.Arguments)
	if err != nil {
		return fmt.Errorf("failed to marshal arguments: %w", err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("failed to unmarshal arguments: %w", err)
	}
	return nil
}

func jsonResult(data any) (*protocol.CallToolResult, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return textResult(string(raw), false), nil
}

func textResult(text string, isError bool) *protocol.CallToolResult {
	return &protocol.CallToolResult{
		Content: []protocol.Content{
			protocol.TextContent{
				Type: contentTypeText,
				Text: text,
			},
		},
		IsError: isError,
	}
}
