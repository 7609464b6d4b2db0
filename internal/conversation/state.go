package conversation

import (
	"time"

	"fitness-agent/internal/model"
)

// State is threaded through the stages of one message. It is owned by the
// goroutine handling that message and never shared.
type State struct {
	userID    string
	message   string
	timestamp time.Time

	intent     *model.Intent
	confidence *float64

	FoodItems []model.FoodItem
	// FoodItemsParsed tells an attempted parse with no items apart from no parse.
	FoodItemsParsed   bool
	EstimatedCalories *model.CalorieEstimate

	GoalType *model.GoalType
	GoalData *model.GoalData

	SummaryPeriod *model.Period
	SummaryData   *model.Summary

	NeedsClarification    bool
	ClarificationQuestion *string

	Response string
	Metadata map[string]any
	Err      error
}

func NewState(userID, message string, ts time.Time) *State {
	return &State{
		userID:    userID,
		message:   message,
		timestamp: ts,
	}
}

func (s *State) UserID() string       { return s.userID }
func (s *State) Message() string      { return s.message }
func (s *State) Timestamp() time.Time { return s.timestamp }

// SetIntent records the router's classification. It can be called once.
func (s *State) SetIntent(intent model.Intent, confidence float64) error {
	if s.intent != nil {
		return ErrIntentAlreadySet
	}
	s.intent = &intent
	s.confidence = &confidence
	return nil
}

// Intent returns the classified intent, if routing has run.
func (s *State) Intent() (model.Intent, float64, bool) {
	if s.intent == nil {
		return "", 0, false
	}
	return *s.intent, *s.confidence, true
}

// Clarify ends the run in the clarification stage with question.
func (s *State) Clarify(question string) {
	s.NeedsClarification = true
	s.ClarificationQuestion = &question
}

// Fail marks the run as failed with a reply for the user.
func (s *State) Fail(err error, response string) {
	s.Err = err
	s.Response = response
}

// SetMeta adds a metadata entry.
func (s *State) SetMeta(key string, v any) {
	if s.Metadata == nil {
		s.Metadata = make(map[string]any)
	}
	s.Metadata[key] = v
}
