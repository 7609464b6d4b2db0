package router

import "fitness-agent/internal/model"

// Decision is the router's verdict for one message.
type Decision struct {
	Intent             model.Intent
	Confidence         float64
	NeedsClarification bool
	Stage              model.Stage
}

// Options tunes an IntentRouter. Zero values select the defaults.
type Options struct {
	Temperature         float64
	ConfidenceThreshold float64
}
