package assistant

import (
	"context"
	"time"

	"luna-assistant/internal/assistant/capability"
	"luna-assistant/internal/model"
)

// UseCase defines the business logic interface for the assistant domain.
type UseCase interface {
	// Process classifies an utterance, executes a local capability when the
	// routing policy permits, and records a classification event. It never
	// returns an error for classification or handler failures; those
	// downgrade the result type instead.
	Process(ctx context.Context, sc model.Scope, input ProcessInput) (ProcessOutput, error)

	// Feedback attaches ground truth and satisfaction to a recorded event.
	Feedback(ctx context.Context, sc model.Scope, input FeedbackInput) error
}

// Classifier maps an utterance to an intent. Implementations are total:
// every input yields a populated intent, never an error.
type Classifier interface {
	Classify(text string, appCtx model.AppContext) model.Intent
}

// ContextResolver merges request hints with remembered session state.
type ContextResolver interface {
	Resolve(sessionID string, hints ContextHints) model.AppContext
	Remember(sessionID, input string, intent model.Intent)
}

// CapabilityRegistry looks up the local handler for an intent, if any.
type CapabilityRegistry interface {
	Get(category model.Category, action model.Action) (capability.Capability, bool)
}

// ResultCache memoizes deterministic results by request signature.
type ResultCache interface {
	Get(sig string) (model.LocalTaskResult, bool)
	Put(sig string, result model.LocalTaskResult, ttl time.Duration)
}
