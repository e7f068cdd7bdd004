package analytics

import (
	"context"
	"fmt"
	"testing"
	"time"

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

func newEvent(id string, cat model.Category, act model.Action, conf float64, outcome model.Outcome) model.ClassificationEvent {
	return model.ClassificationEvent{
		ID:    id,
		Input: "test input",
		PredictedIntent: model.Intent{
			Category:   cat,
			Action:     act,
			Confidence: conf,
		},
		Outcome:   outcome,
		Timestamp: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestRecordAndExport(t *testing.T) {
	tr := NewInMemoryTracker(&mockLogger{}, 10)
	ctx := context.Background()

	tr.Record(ctx, newEvent("e1", model.CategoryTaskManagement, model.ActionCreate, 0.8, model.OutcomeSuccessful))
	tr.Record(ctx, newEvent("e2", model.CategoryGeneral, model.ActionTime, 0.75, model.OutcomeSuccessful))

	events := tr.Export(ctx)
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].ID != "e1" || events[1].ID != "e2" {
		t.Errorf("expected oldest-first order, got %s, %s", events[0].ID, events[1].ID)
	}
}

func TestRecordDropsEventWithoutID(t *testing.T) {
	tr := NewInMemoryTracker(&mockLogger{}, 10)
	ctx := context.Background()

	tr.Record(ctx, newEvent("", model.CategoryGeneral, model.ActionHelp, 0.2, model.OutcomeAmbiguous))

	if got := len(tr.Export(ctx)); got != 0 {
		t.Errorf("expected 0 events, got %d", got)
	}
}

func TestRingBufferEviction(t *testing.T) {
	tr := NewInMemoryTracker(&mockLogger{}, 3)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		tr.Record(ctx, newEvent(fmt.Sprintf("e%d", i), model.CategoryGeneral, model.ActionTime, 0.7, model.OutcomeSuccessful))
	}

	events := tr.Export(ctx)
	if len(events) != 3 {
		t.Fatalf("expected 3 retained events, got %d", len(events))
	}
	want := []string{"e3", "e4", "e5"}
	for i, id := range want {
		if events[i].ID != id {
			t.Errorf("slot %d: expected %s, got %s", i, id, events[i].ID)
		}
	}

	// Feedback on an evicted event must fail.
	if err := tr.RecordFeedback(ctx, "e1", model.Intent{Category: model.CategoryGeneral, Action: model.ActionTime}, nil); err != ErrEventNotFound {
		t.Errorf("expected ErrEventNotFound for evicted event, got %v", err)
	}
}

func TestRecordFeedback(t *testing.T) {
	tr := NewInMemoryTracker(&mockLogger{}, 10)
	ctx := context.Background()

	tr.Record(ctx, newEvent("e1", model.CategoryTaskManagement, model.ActionCreate, 0.6, model.OutcomeAmbiguous))

	t.Run("Matching ground truth marks success", func(t *testing.T) {
		helpful := true
		err := tr.RecordFeedback(ctx, "e1", model.Intent{Category: model.CategoryTaskManagement, Action: model.ActionCreate}, &helpful)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ev := tr.Export(ctx)[0]
		if ev.Outcome != model.OutcomeSuccessful {
			t.Errorf("expected successful outcome, got %s", ev.Outcome)
		}
		if ev.Helpful == nil || !*ev.Helpful {
			t.Error("expected helpful to be recorded")
		}
		if !ev.HasGroundTruth() {
			t.Error("expected ground truth to be set")
		}
	})

	t.Run("Mismatching ground truth marks failure", func(t *testing.T) {
		err := tr.RecordFeedback(ctx, "e1", model.Intent{Category: model.CategoryGoalSetting, Action: model.ActionCreate}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ev := tr.Export(ctx)[0]
		if ev.Outcome != model.OutcomeFailed {
			t.Errorf("expected failed outcome, got %s", ev.Outcome)
		}
		// Earlier helpful flag stays when feedback omits it.
		if ev.Helpful == nil || !*ev.Helpful {
			t.Error("expected earlier helpful flag to survive")
		}
	})

	t.Run("Unknown event", func(t *testing.T) {
		err := tr.RecordFeedback(ctx, "missing", model.Intent{}, nil)
		if err != ErrEventNotFound {
			t.Errorf("expected ErrEventNotFound, got %v", err)
		}
	})
}

func TestAggregateUsage(t *testing.T) {
	tr := NewInMemoryTracker(&mockLogger{}, 50)
	ctx := context.Background()

	// 4 task creations, 3 successful; 2 clock lookups, both successful.
	for i := 0; i < 3; i++ {
		tr.Record(ctx, newEvent(fmt.Sprintf("t%d", i), model.CategoryTaskManagement, model.ActionCreate, 0.8, model.OutcomeSuccessful))
	}
	tr.Record(ctx, newEvent("t3", model.CategoryTaskManagement, model.ActionCreate, 0.4, model.OutcomeFailed))
	tr.Record(ctx, newEvent("c0", model.CategoryGeneral, model.ActionTime, 0.75, model.OutcomeSuccessful))
	tr.Record(ctx, newEvent("c1", model.CategoryGeneral, model.ActionTime, 0.75, model.OutcomeSuccessful))

	dash := tr.Aggregate(ctx, Filter{})

	if len(dash.Performance) != 2 {
		t.Fatalf("expected 2 usage buckets, got %d", len(dash.Performance))
	}

	// task/create: popularity 4 * 0.75 = 3.0; general/time: 2 * 1.0 = 2.0.
	top := dash.Performance[0]
	if top.Category != model.CategoryTaskManagement || top.Action != model.ActionCreate {
		t.Fatalf("expected task_management/create on top, got %s/%s", top.Category, top.Action)
	}
	if top.TotalUsage != 4 {
		t.Errorf("expected 4 uses, got %d", top.TotalUsage)
	}
	if top.SuccessRate != 0.75 {
		t.Errorf("expected success rate 0.75, got %v", top.SuccessRate)
	}
	if top.PopularityScore != 3.0 {
		t.Errorf("expected popularity 3.0, got %v", top.PopularityScore)
	}

	if dash.Overview.TotalEvents != 6 {
		t.Errorf("expected 6 total events, got %d", dash.Overview.TotalEvents)
	}
	if len(dash.Overview.TopPerformingPrompts) != 2 {
		t.Errorf("expected 2 top prompts, got %d", len(dash.Overview.TopPerformingPrompts))
	}
}

func TestAggregateAccuracy(t *testing.T) {
	tr := NewInMemoryTracker(&mockLogger{}, 50)
	ctx := context.Background()

	// Unlabeled events never count toward accuracy.
	tr.Record(ctx, newEvent("u0", model.CategoryPlanning, model.ActionSchedule, 0.7, model.OutcomeSuccessful))

	for i := 0; i < 4; i++ {
		tr.Record(ctx, newEvent(fmt.Sprintf("g%d", i), model.CategoryGoalSetting, model.ActionTrack, 0.7, model.OutcomeAmbiguous))
	}
	// 2 correct, 2 actually habit tracking.
	for i := 0; i < 2; i++ {
		if err := tr.RecordFeedback(ctx, fmt.Sprintf("g%d", i), model.Intent{Category: model.CategoryGoalSetting, Action: model.ActionTrack}, nil); err != nil {
			t.Fatalf("feedback failed: %v", err)
		}
	}
	for i := 2; i < 4; i++ {
		if err := tr.RecordFeedback(ctx, fmt.Sprintf("g%d", i), model.Intent{Category: model.CategoryHabitFormation, Action: model.ActionTrack}, nil); err != nil {
			t.Fatalf("feedback failed: %v", err)
		}
	}

	dash := tr.Aggregate(ctx, Filter{})

	if _, ok := dash.Accuracy[model.CategoryPlanning]; ok {
		t.Error("unlabeled category should not appear in accuracy")
	}
	m, ok := dash.Accuracy[model.CategoryGoalSetting]
	if !ok {
		t.Fatal("expected accuracy bucket for goal_setting")
	}
	if m.TotalPredictions != 4 || m.CorrectPredictions != 2 {
		t.Errorf("expected 2/4 correct, got %d/%d", m.CorrectPredictions, m.TotalPredictions)
	}
	if m.Accuracy != 0.5 {
		t.Errorf("expected accuracy 0.5, got %v", m.Accuracy)
	}
	if len(m.CommonMisclassifications) != 1 {
		t.Fatalf("expected 1 misclassification pair, got %d", len(m.CommonMisclassifications))
	}
	mc := m.CommonMisclassifications[0]
	if mc.Predicted != "goal_setting/track" || mc.Actual != "habit_formation/track" || mc.Count != 2 {
		t.Errorf("unexpected misclassification: %+v", mc)
	}
}

func TestAggregateFilter(t *testing.T) {
	tr := NewInMemoryTracker(&mockLogger{}, 50)
	ctx := context.Background()

	old := newEvent("old", model.CategoryGeneral, model.ActionTime, 0.7, model.OutcomeSuccessful)
	old.Timestamp = time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	tr.Record(ctx, old)
	tr.Record(ctx, newEvent("new", model.CategoryGeneral, model.ActionTime, 0.7, model.OutcomeSuccessful))
	tr.Record(ctx, newEvent("task", model.CategoryTaskManagement, model.ActionCreate, 0.8, model.OutcomeSuccessful))

	t.Run("By category", func(t *testing.T) {
		dash := tr.Aggregate(ctx, Filter{Category: model.CategoryTaskManagement})
		if dash.Overview.TotalEvents != 1 {
			t.Errorf("expected 1 event, got %d", dash.Overview.TotalEvents)
		}
	})

	t.Run("By time", func(t *testing.T) {
		dash := tr.Aggregate(ctx, Filter{Since: time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC)})
		if dash.Overview.TotalEvents != 2 {
			t.Errorf("expected 2 events, got %d", dash.Overview.TotalEvents)
		}
	})
}

func TestInsights(t *testing.T) {
	tr := NewInMemoryTracker(&mockLogger{}, 100)
	ctx := context.Background()

	// 6 labeled workflow events, only 2 correct: low accuracy. The same
	// bucket carries high confidence with a low success rate, so the
	// overconfident insight fires too.
	for i := 0; i < 6; i++ {
		tr.Record(ctx, newEvent(fmt.Sprintf("w%d", i), model.CategoryWorkflow, model.ActionOrganize, 0.85, model.OutcomeAmbiguous))
	}
	for i := 0; i < 2; i++ {
		if err := tr.RecordFeedback(ctx, fmt.Sprintf("w%d", i), model.Intent{Category: model.CategoryWorkflow, Action: model.ActionOrganize}, nil); err != nil {
			t.Fatalf("feedback failed: %v", err)
		}
	}
	for i := 2; i < 6; i++ {
		if err := tr.RecordFeedback(ctx, fmt.Sprintf("w%d", i), model.Intent{Category: model.CategoryPlanning, Action: model.ActionOrganize}, nil); err != nil {
			t.Fatalf("feedback failed: %v", err)
		}
	}

	dash := tr.Aggregate(ctx, Filter{})

	types := map[string]bool{}
	for _, in := range dash.Insights {
		types[in.Type] = true
	}
	if !types["low_accuracy"] {
		t.Error("expected low_accuracy insight")
	}
	if !types["overconfident"] {
		t.Error("expected overconfident insight")
	}
	if !types["usage_pattern"] {
		t.Error("expected usage_pattern insight")
	}
}
