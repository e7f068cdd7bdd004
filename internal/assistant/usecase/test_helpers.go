package usecase

import (
	"context"
	"time"

	"luna-assistant/internal/analytics"
	"luna-assistant/internal/assistant"
	"luna-assistant/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockClassifier struct {
	classifyFn func(text string, appCtx model.AppContext) model.Intent
	calls      int
}

func (m *mockClassifier) Classify(text string, appCtx model.AppContext) model.Intent {
	m.calls++
	if m.classifyFn != nil {
		return m.classifyFn(text, appCtx)
	}
	return model.Intent{Category: model.CategoryGeneral, Action: model.ActionHelp, Confidence: 0.2}
}

type rememberCall struct {
	sessionID string
	input     string
	intent    model.Intent
}

type mockResolver struct {
	resolveFn func(sessionID string, hints assistant.ContextHints) model.AppContext
	remembers []rememberCall
}

func (m *mockResolver) Resolve(sessionID string, hints assistant.ContextHints) model.AppContext {
	if m.resolveFn != nil {
		return m.resolveFn(sessionID, hints)
	}
	return model.AppContext{
		CurrentModule:   hints.Module,
		UserPreferences: model.UserPreferences{Language: "en", Timezone: "UTC"},
	}
}

func (m *mockResolver) Remember(sessionID, input string, intent model.Intent) {
	m.remembers = append(m.remembers, rememberCall{sessionID: sessionID, input: input, intent: intent})
}

type putCall struct {
	sig    string
	result model.LocalTaskResult
	ttl    time.Duration
}

type mockCache struct {
	getFn func(sig string) (model.LocalTaskResult, bool)
	puts  []putCall
}

func (m *mockCache) Get(sig string) (model.LocalTaskResult, bool) {
	if m.getFn != nil {
		return m.getFn(sig)
	}
	return model.LocalTaskResult{}, false
}

func (m *mockCache) Put(sig string, result model.LocalTaskResult, ttl time.Duration) {
	m.puts = append(m.puts, putCall{sig: sig, result: result, ttl: ttl})
}

type mockTracker struct {
	recorded   []model.ClassificationEvent
	feedbackFn func(eventID string, actual model.Intent, helpful *bool) error
}

func (m *mockTracker) Record(ctx context.Context, event model.ClassificationEvent) {
	m.recorded = append(m.recorded, event)
}

func (m *mockTracker) RecordFeedback(ctx context.Context, eventID string, actual model.Intent, helpful *bool) error {
	if m.feedbackFn != nil {
		return m.feedbackFn(eventID, actual, helpful)
	}
	return nil
}

func (m *mockTracker) Aggregate(ctx context.Context, filter analytics.Filter) analytics.Dashboard {
	return analytics.Dashboard{}
}

func (m *mockTracker) Export(ctx context.Context) []model.ClassificationEvent {
	return nil
}
