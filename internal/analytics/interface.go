package analytics

import (
	"context"

	"luna-assistant/internal/model"
)

//go:generate mockery --name Tracker
type Tracker interface {
	// Record stores one classification event. Old events are evicted
	// once the configured capacity is reached.
	Record(ctx context.Context, event model.ClassificationEvent)
	// RecordFeedback attaches ground truth to an existing event and
	// re-derives its outcome.
	RecordFeedback(ctx context.Context, eventID string, actual model.Intent, helpful *bool) error
	// Aggregate computes the dashboard over the retained window.
	Aggregate(ctx context.Context, filter Filter) Dashboard
	// Export returns a copy of the retained events, oldest first.
	Export(ctx context.Context) []model.ClassificationEvent
}
