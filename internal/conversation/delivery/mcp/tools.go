package mcp

import (
	"context"

	"github.com/ThinkInAIXYZ/go-mcp/protocol"

	"fitness-agent/internal/goal"
	"fitness-agent/internal/model"
)

type tool struct {
	info toolInfo
	call func(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error)
}

func (h *handler) registerTools() map[string]tool {
	return map[string]tool{
		ToolChat: {
			info: toolInfo{
				Name:        ToolChat,
				Description: "Send a free text message to the fitness agent (log food, set a goal, ask for a summary)",
				Arguments:   []string{"user_id", "message"},
			},
			call: h.chat,
		},
		ToolGetSummary: {
			info: toolInfo{
				Name:        ToolGetSummary,
				Description: "Summarize calories against the user's goal for a daily, weekly or monthly period",
				Arguments:   []string{"user_id", "period"},
			},
			call: h.getSummary,
		},
		ToolGetGoal: {
			info: toolInfo{
				Name:        ToolGetGoal,
				Description: "Return the user's current goal",
				Arguments:   []string{"user_id"},
			},
			call: h.getGoal,
		},
		ToolSetGoal: {
			info: toolInfo{
				Name:        ToolSetGoal,
				Description: "Create or replace the user's goal",
				Arguments:   []string{"user_id", "goal_type", "target_calories", "target_weight", "target_date"},
			},
			call: h.setGoal,
		},
	}
}

func (h *handler) chat(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var p chatParams
	if err := extractParams(req, &p); err != nil {
		return nil, model.NewBadInput("arguments", err)
	}
	res, err := h.uc.HandleMessage(ctx, p.UserID, p.Message)
	if err != nil {
		return nil, err
	}
	return jsonResult(newChatResult(res))
}

func (h *handler) getSummary(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var p summaryParams
	if err := extractParams(req, &p); err != nil {
		return nil, model.NewBadInput("arguments", err)
	}
	period := model.DefaultPeriod
	if p.Period != "" {
		var err error
		if period, err = model.ParsePeriod(p.Period); err != nil {
			return nil, model.NewBadInput("period", err)
		}
	}
	s, err := h.sum.ForPeriod(ctx, p.UserID, period)
	if err != nil {
		return nil, err
	}
	return jsonResult(summaryResult{Period: period, Summary: s})
}

func (h *handler) getGoal(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var p userParams
	if err := extractParams(req, &p); err != nil {
		return nil, model.NewBadInput("arguments", err)
	}
	if p.UserID == "" {
		return nil, model.NewBadInput("user_id", goal.ErrUserIDRequired)
	}
	g, err := h.goals.Get(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	return jsonResult(goalResult{Goal: g})
}

func (h *handler) setGoal(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var p setGoalParams
	if err := extractParams(req, &p); err != nil {
		return nil, model.NewBadInput("arguments", err)
	}
	out, err := h.goals.Set(ctx, goal.SetInput{
		UserID:   p.UserID,
		GoalType: model.GoalType(p.GoalType),
		Data: model.GoalData{
			TargetCalories: p.TargetCalories,
			TargetWeight:   p.TargetWeight,
			TargetDate:     p.TargetDate,
		},
	})
	if err != nil {
		return nil, err
	}
	return jsonResult(goalResult{Goal: out.Goal, Created: out.Created})
}
