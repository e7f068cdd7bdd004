package assistant

import "luna-assistant/internal/model"

// ContextHints are the ambient signals the UI layer sends with an utterance.
// Everything is optional; the resolver substitutes safe defaults.
type ContextHints struct {
	Route        string       `json:"route"`
	Module       model.Module `json:"module"`
	Language     string       `json:"language"`
	Timezone     string       `json:"timezone"`
	CurrentFocus string       `json:"current_focus"`
}

// ProcessInput is the input for processing one free-text utterance.
type ProcessInput struct {
	Text  string       `json:"text"`
	Hints ContextHints `json:"hints"`
}

// ProcessOutput is the result of processing one utterance. EventID refers to
// the classification event recorded for this request and is the handle the
// caller uses to send feedback later.
type ProcessOutput struct {
	Result  model.LocalTaskResult
	EventID string
}

// FeedbackInput attaches ground truth and satisfaction to a past event.
type FeedbackInput struct {
	EventID        string         `json:"event_id"`
	ActualCategory model.Category `json:"actual_category"`
	ActualAction   model.Action   `json:"actual_action"`
	Helpful        *bool          `json:"helpful,omitempty"`
}
