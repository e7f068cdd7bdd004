package usecase

import (
	"context"
	"errors"

	"luna-assistant/internal/analytics"
	"luna-assistant/internal/assistant"
	"luna-assistant/internal/model"
)

// Feedback validates and forwards ground truth to the tracker.
func (uc *implUseCase) Feedback(ctx context.Context, sc model.Scope, input assistant.FeedbackInput) error {
	if input.EventID == "" || input.ActualCategory == "" || input.ActualAction == "" {
		return assistant.ErrInvalidFeedback
	}

	actual := model.Intent{
		Category: input.ActualCategory,
		Action:   input.ActualAction,
	}
	err := uc.tracker.RecordFeedback(ctx, input.EventID, actual, input.Helpful)
	if err != nil {
		if errors.Is(err, analytics.ErrEventNotFound) {
			return assistant.ErrEventNotFound
		}
		uc.l.Errorf(ctx, "%s.Feedback RecordFeedback: %v", logPrefix, err)
		return err
	}
	return nil
}
