package http

import (
	"fitness-agent/internal/goal"
	"fitness-agent/pkg/log"
)

type handler struct {
	l  log.Logger
	uc goal.UseCase
}

// New creates a new HTTP handler for the goal domain.
func New(l log.Logger, uc goal.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
