package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"luna-assistant/internal/assistant"
	"luna-assistant/internal/assistant/cache"
	"luna-assistant/internal/assistant/capability"
	"luna-assistant/internal/model"
)

// Process runs the full pipeline for one utterance: resolve context, check
// the cache, classify, route by confidence, execute, memoize, remember and
// record. Exactly one classification event is recorded per call.
func (uc *implUseCase) Process(ctx context.Context, sc model.Scope, input assistant.ProcessInput) (assistant.ProcessOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return assistant.ProcessOutput{}, assistant.ErrEmptyInput
	}

	start := time.Now()
	appCtx := uc.resolver.Resolve(sc.SessionID, input.Hints)
	sig := cache.Signature(text, appCtx)

	if result, ok := uc.cache.Get(sig); ok {
		result.ExecutionTime = time.Since(start)
		uc.l.Debugf(ctx, "%s.Process: cache hit for %q", logPrefix, text)

		eventID := uc.record(ctx, text, appCtx, result, true)
		uc.resolver.Remember(sc.SessionID, text, result.Intent)
		return assistant.ProcessOutput{Result: result, EventID: eventID}, nil
	}

	intent := uc.classifier.Classify(text, appCtx)
	result := uc.route(ctx, text, appCtx, intent)
	result.ExecutionTime = time.Since(start)

	if result.Cacheable && result.Type == model.ResultSuccess {
		uc.cache.Put(sig, result, uc.cfg.CacheTTL)
	}

	eventID := uc.record(ctx, text, appCtx, result, false)
	uc.resolver.Remember(sc.SessionID, text, intent)

	return assistant.ProcessOutput{Result: result, EventID: eventID}, nil
}

// route applies the confidence policy. A local capability must exist for
// anything to happen locally: high confidence executes it, mid confidence
// produces a fallback hint. No capability, or confidence below the
// fallback threshold, rejects so the remote assistant starts clean.
func (uc *implUseCase) route(ctx context.Context, text string, appCtx model.AppContext, intent model.Intent) model.LocalTaskResult {
	cap, ok := uc.registry.Get(intent.Category, intent.Action)
	if !ok {
		uc.l.Debugf(ctx, "%s.route: no capability for %s", logPrefix, intent.Key())
		return rejectedResult(intent)
	}

	switch {
	case intent.Confidence >= uc.cfg.ThresholdHandle:
		return uc.handle(ctx, cap, text, appCtx, intent)
	case intent.Confidence >= uc.cfg.ThresholdFallback:
		return fallbackResult(intent)
	default:
		return rejectedResult(intent)
	}
}

// handle executes a capability, downgrading to fallback on any failure.
func (uc *implUseCase) handle(ctx context.Context, cap capability.Capability, text string, appCtx model.AppContext, intent model.Intent) model.LocalTaskResult {
	started := time.Now()
	out, err := uc.execute(ctx, cap, text, appCtx)
	elapsed := time.Since(started)

	if budget := cap.MaxExecutionTime(); budget > 0 && elapsed > budget {
		uc.l.Warnf(ctx, "%s.handle: capability %s took %s, budget %s", logPrefix, cap.Name(), elapsed, budget)
	}
	if err != nil {
		uc.l.Warnf(ctx, "%s.handle: capability %s failed: %v", logPrefix, cap.Name(), err)
		return fallbackResult(intent)
	}

	return model.LocalTaskResult{
		Type:           model.ResultSuccess,
		HandledLocally: true,
		Content:        out.Content,
		Intent:         intent,
		Confidence:     intent.Confidence,
		Action:         out.Action,
		Cacheable:      cap.Cacheable(),
	}
}

// execute isolates capability panics so a buggy handler degrades to a
// fallback instead of crashing the request.
func (uc *implUseCase) execute(ctx context.Context, cap capability.Capability, text string, appCtx model.AppContext) (out capability.Output, err error) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "%s.execute: capability %s panicked: %v", logPrefix, cap.Name(), r)
			err = fmt.Errorf("capability %s panicked", cap.Name())
		}
	}()
	return cap.Execute(text, appCtx)
}

// record stores the classification event and returns its ID.
func (uc *implUseCase) record(ctx context.Context, text string, appCtx model.AppContext, result model.LocalTaskResult, fromCache bool) string {
	event := model.ClassificationEvent{
		ID:              uuid.NewString(),
		Input:           text,
		Context:         appCtx.Snapshot(),
		PredictedIntent: result.Intent,
		Outcome:         model.OutcomeAmbiguous,
		HandledLocally:  result.HandledLocally,
		FromCache:       fromCache,
		Timestamp:       time.Now(),
	}
	if result.Type == model.ResultSuccess {
		event.Outcome = model.OutcomeSuccessful
	}
	uc.tracker.Record(ctx, event)
	return event.ID
}

func fallbackResult(intent model.Intent) model.LocalTaskResult {
	return model.LocalTaskResult{
		Type:       model.ResultFallback,
		Content:    "I'll pass this to the assistant.",
		Intent:     intent,
		Confidence: intent.Confidence,
		SuggestedActions: []model.SuggestedAction{
			{Label: suggestionLabel(intent), Intent: intent},
		},
	}
}

func rejectedResult(intent model.Intent) model.LocalTaskResult {
	return model.LocalTaskResult{
		Type:       model.ResultError,
		Content:    "I couldn't work this out locally.",
		Intent:     intent,
		Confidence: intent.Confidence,
	}
}

// suggestionLabels covers the intents local capabilities can satisfy;
// fallbackResult is only built when one exists.
var suggestionLabels = map[string]string{
	"task_management/create": "Create a task",
	"general/time":           "Check the time",
	"general/calculate":      "Run the calculation",
	"general/navigate":       "Go to a page",
}

func suggestionLabel(intent model.Intent) string {
	if label, ok := suggestionLabels[intent.Key()]; ok {
		return label
	}
	return "Ask the assistant"
}
