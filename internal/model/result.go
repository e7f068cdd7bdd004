package model

import "time"

// ResultType describes how a request was routed.
type ResultType string

const (
	ResultSuccess  ResultType = "success"  // handled locally
	ResultFallback ResultType = "fallback" // remote assistant should take over with a hint
	ResultError    ResultType = "error"    // nothing local applies, remote assistant required
)

// ActionDescriptor is an inert, structured description of a mutating action
// the host application should apply. The engine never writes to any store.
type ActionDescriptor struct {
	Type    string            `json:"type"`    // e.g. "create_task", "navigate"
	Payload map[string]string `json:"payload"` // flat string fields (title, priority, due_date, route)
}

// SuggestedAction is a hint surfaced to the user or to the remote assistant.
type SuggestedAction struct {
	Label  string `json:"label"`
	Intent Intent `json:"intent"`
}

// LocalTaskResult is the single output of processing one utterance. Every
// path through the engine terminates in a valid result; failures downgrade
// the type, they never escape as errors.
type LocalTaskResult struct {
	Type             ResultType        `json:"type"`
	HandledLocally   bool              `json:"handled_locally"`
	Content          string            `json:"content"`
	Intent           Intent            `json:"intent"`
	Confidence       float64           `json:"confidence"`
	ExecutionTime    time.Duration     `json:"execution_time"`
	SuggestedActions []SuggestedAction `json:"suggested_actions,omitempty"`
	Action           *ActionDescriptor `json:"action,omitempty"`

	// Cacheable is false for results that depend on wall-clock time or
	// other mutable external state. The engine honors it unconditionally.
	Cacheable bool `json:"-"`
}
