package router

import (
	"context"

	"fitness-agent/internal/extract"
	"fitness-agent/pkg/llmprovider"
	"fitness-agent/pkg/log"
)

// Router classifies a message and picks the next stage.
type Router interface {
	Route(ctx context.Context, message string) Decision
}

// IntentRouter classifies user intent with the generation port.
type IntentRouter struct {
	gen       llmprovider.Generator
	extractor *extract.Extractor[extract.IntentResult]
	opts      Options
	l         log.Logger
}

var _ Router = (*IntentRouter)(nil)

// New creates a new IntentRouter.
func New(gen llmprovider.Generator, l log.Logger, opts Options) *IntentRouter {
	if opts.Temperature <= 0 {
		opts.Temperature = DefaultTemperature
	}
	if opts.ConfidenceThreshold <= 0 {
		opts.ConfidenceThreshold = DefaultConfidenceThreshold
	}
	return &IntentRouter{
		gen:       gen,
		extractor: extract.NewIntentExtractor(),
		opts:      opts,
		l:         l,
	}
}
