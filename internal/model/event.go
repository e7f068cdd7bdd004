package model

import "time"

// Outcome is the terminal state of a processed request.
type Outcome string

const (
	OutcomeSuccessful Outcome = "successful"
	OutcomeFailed     Outcome = "failed"
	OutcomeAmbiguous  Outcome = "ambiguous"
)

// ClassificationEvent records one processed input for analytics. Events are
// append-only; only ground-truth fields (ActualIntent, Outcome, satisfaction)
// may be filled in later via feedback, keyed by ID.
type ClassificationEvent struct {
	ID              string          `json:"id"` // uuid
	Input           string          `json:"input"`
	Context         ContextSnapshot `json:"context"`
	PredictedIntent Intent          `json:"predicted_intent"`
	ActualIntent    *Intent         `json:"actual_intent,omitempty"` // ground truth, if any
	Outcome         Outcome         `json:"outcome"`
	HandledLocally  bool            `json:"handled_locally"`
	FromCache       bool            `json:"from_cache"`
	Helpful         *bool           `json:"helpful,omitempty"` // explicit user satisfaction
	Timestamp       time.Time       `json:"timestamp"`
}

// HasGroundTruth reports whether the event can contribute to accuracy.
func (e ClassificationEvent) HasGroundTruth() bool {
	return e.ActualIntent != nil
}
