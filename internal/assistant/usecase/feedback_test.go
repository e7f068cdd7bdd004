package usecase

import (
	"context"
	"testing"

	"luna-assistant/internal/analytics"
	"luna-assistant/internal/assistant"
	"luna-assistant/internal/model"
)

func TestFeedbackValidation(t *testing.T) {
	uc, _ := newEngine(&mockClassifier{}, nil, &mockCache{}, &mockTracker{})
	sc := model.Scope{SessionID: "s1"}

	cases := []struct {
		name  string
		input assistant.FeedbackInput
	}{
		{"Missing event ID", assistant.FeedbackInput{ActualCategory: model.CategoryGeneral, ActualAction: model.ActionTime}},
		{"Missing category", assistant.FeedbackInput{EventID: "e1", ActualAction: model.ActionTime}},
		{"Missing action", assistant.FeedbackInput{EventID: "e1", ActualCategory: model.CategoryGeneral}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := uc.Feedback(context.Background(), sc, tc.input); err != assistant.ErrInvalidFeedback {
				t.Errorf("expected ErrInvalidFeedback, got %v", err)
			}
		})
	}
}

func TestFeedbackForwardsToTracker(t *testing.T) {
	var gotID string
	var gotActual model.Intent
	tr := &mockTracker{feedbackFn: func(eventID string, actual model.Intent, helpful *bool) error {
		gotID = eventID
		gotActual = actual
		return nil
	}}
	uc, _ := newEngine(&mockClassifier{}, nil, &mockCache{}, tr)

	helpful := true
	err := uc.Feedback(context.Background(), model.Scope{SessionID: "s1"}, assistant.FeedbackInput{
		EventID:        "e1",
		ActualCategory: model.CategoryTaskManagement,
		ActualAction:   model.ActionCreate,
		Helpful:        &helpful,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotID != "e1" {
		t.Errorf("expected event e1, got %q", gotID)
	}
	if gotActual.Category != model.CategoryTaskManagement || gotActual.Action != model.ActionCreate {
		t.Errorf("unexpected actual intent: %+v", gotActual)
	}
}

func TestFeedbackUnknownEvent(t *testing.T) {
	tr := &mockTracker{feedbackFn: func(string, model.Intent, *bool) error {
		return analytics.ErrEventNotFound
	}}
	uc, _ := newEngine(&mockClassifier{}, nil, &mockCache{}, tr)

	err := uc.Feedback(context.Background(), model.Scope{SessionID: "s1"}, assistant.FeedbackInput{
		EventID:        "missing",
		ActualCategory: model.CategoryGeneral,
		ActualAction:   model.ActionTime,
	})
	if err != assistant.ErrEventNotFound {
		t.Errorf("expected ErrEventNotFound, got %v", err)
	}
}
