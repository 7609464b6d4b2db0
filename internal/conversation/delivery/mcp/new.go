package mcp

import (
	"fitness-agent/internal/conversation"
	"fitness-agent/internal/goal"
	"fitness-agent/internal/summary"
	"fitness-agent/pkg/log"
)

type handler struct {
	l     log.Logger
	uc    conversation.UseCase
	goals goal.UseCase
	sum   summary.UseCase
	tools map[string]tool
}

// New creates the MCP tool handler. It exposes the chat pipeline plus direct
// goal and summary lookups.
func New(l log.Logger, uc conversation.UseCase, goals goal.UseCase, sum summary.UseCase) *handler {
	h := &handler{
		l:     l,
		uc:    uc,
		goals: goals,
		sum:   sum,
	}
	h.tools = h.registerTools()
	return h
}
