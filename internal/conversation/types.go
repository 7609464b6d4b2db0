package conversation

import "fitness-agent/internal/model"

type Status string

const (
	StatusOK            Status = "ok"
	StatusRequestFailed Status = "request_failed"
)

// Result is the caller facing outcome of one message.
type Result struct {
	Response   string
	Intent     model.Intent // empty when routing never ran
	Confidence float64
	Stage      model.Stage // terminal stage reached
	Metadata   map[string]any
	Status     Status
}
