package http

import (
	"fitness-agent/internal/summary"
	"fitness-agent/pkg/log"
)

type handler struct {
	l  log.Logger
	uc summary.UseCase
}

// New creates a new HTTP handler for summaries.
func New(l log.Logger, uc summary.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
