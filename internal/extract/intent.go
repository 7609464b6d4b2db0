package extract

import (
	"strings"

	"fitness-agent/internal/model"
)

// IntentResult is the classified intent of a message.
type IntentResult struct {
	Intent     model.Intent `json:"intent"`
	Confidence float64      `json:"confidence"`
}

const intentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["intent", "confidence"],
  "properties": {
    "intent": {"type": "string", "enum": ["log_food", "set_goal", "get_summary", "ask_question", "clarify"]},
    "confidence": {"type": "number", "minimum": 0, "maximum": 1}
  }
}`

// NewIntentExtractor builds the extractor for intent classification output.
func NewIntentExtractor() *Extractor[IntentResult] {
	names := make([]string, len(model.Intents))
	for i, in := range model.Intents {
		names[i] = string(in)
	}
	return mustExtractor[IntentResult]("intent", intentSchema,
		`{"intent": "log_food", "confidence": 0.92}`,
		[]Field{
			{Name: "intent", Type: "string", Required: true, Description: "one of " + strings.Join(names, ", ")},
			{Name: "confidence", Type: "number", Required: true, Description: "confidence score between 0 and 1"},
		})
}
