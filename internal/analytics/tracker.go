package analytics

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"luna-assistant/internal/model"
	pkgLog "luna-assistant/pkg/log"
)

var ErrEventNotFound = errors.New("analytics: event not found")

// InMemoryTracker keeps the last `capacity` classification events in a
// ring buffer and derives all metrics on demand. No persistence: the
// window is process-local and resets on restart.
type InMemoryTracker struct {
	l pkgLog.Logger

	mu       sync.RWMutex
	capacity int
	events   []model.ClassificationEvent
	slots    map[string]int // event ID -> index into events
	next     int            // overwrite cursor once the buffer is full
	wrapped  bool

	now func() time.Time
}

func NewInMemoryTracker(l pkgLog.Logger, capacity int) *InMemoryTracker {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &InMemoryTracker{
		l:        l,
		capacity: capacity,
		events:   make([]model.ClassificationEvent, 0, capacity),
		slots:    make(map[string]int, capacity),
		now:      time.Now,
	}
}

func (t *InMemoryTracker) Record(ctx context.Context, event model.ClassificationEvent) {
	if event.ID == "" {
		t.l.Warnf(ctx, "%s.Record: dropping event without ID", trackerLogPrefix)
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.events) < t.capacity {
		t.slots[event.ID] = len(t.events)
		t.events = append(t.events, event)
		return
	}

	// Buffer full, overwrite the oldest slot.
	t.wrapped = true
	old := t.events[t.next]
	delete(t.slots, old.ID)
	t.events[t.next] = event
	t.slots[event.ID] = t.next
	t.next = (t.next + 1) % t.capacity
}

func (t *InMemoryTracker) RecordFeedback(ctx context.Context, eventID string, actual model.Intent, helpful *bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx, ok := t.slots[eventID]
	if !ok {
		return ErrEventNotFound
	}

	ev := &t.events[idx]
	ev.ActualIntent = &actual
	if helpful != nil {
		ev.Helpful = helpful
	}
	if actual.Category == ev.PredictedIntent.Category && actual.Action == ev.PredictedIntent.Action {
		ev.Outcome = model.OutcomeSuccessful
	} else {
		ev.Outcome = model.OutcomeFailed
	}
	return nil
}

func (t *InMemoryTracker) Export(ctx context.Context) []model.ClassificationEvent {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.snapshotLocked()
}

func (t *InMemoryTracker) Aggregate(ctx context.Context, filter Filter) Dashboard {
	t.mu.RLock()
	events := t.snapshotLocked()
	t.mu.RUnlock()

	filtered := events[:0:0]
	for _, ev := range events {
		if filter.Category != "" && ev.PredictedIntent.Category != filter.Category {
			continue
		}
		if !filter.Since.IsZero() && ev.Timestamp.Before(filter.Since) {
			continue
		}
		filtered = append(filtered, ev)
	}

	usage := aggregateUsage(filtered)
	accuracy := aggregateAccuracy(filtered)

	dash := Dashboard{
		Overview:    buildOverview(filtered, usage),
		Performance: usage,
		Accuracy:    accuracy,
		Insights:    deriveInsights(usage, accuracy),
		GeneratedAt: t.now(),
	}
	return dash
}

// snapshotLocked copies the retained events oldest first. Caller holds
// at least a read lock.
func (t *InMemoryTracker) snapshotLocked() []model.ClassificationEvent {
	out := make([]model.ClassificationEvent, 0, len(t.events))
	if t.wrapped {
		out = append(out, t.events[t.next:]...)
		out = append(out, t.events[:t.next]...)
	} else {
		out = append(out, t.events...)
	}
	return out
}

func aggregateUsage(events []model.ClassificationEvent) []UsageMetric {
	type bucket struct {
		metric     UsageMetric
		confidence float64
		successes  int
	}
	buckets := map[string]*bucket{}

	for _, ev := range events {
		key := ev.PredictedIntent.Key()
		b, ok := buckets[key]
		if !ok {
			b = &bucket{metric: UsageMetric{
				Category: ev.PredictedIntent.Category,
				Action:   ev.PredictedIntent.Action,
			}}
			buckets[key] = b
		}
		b.metric.TotalUsage++
		b.confidence += ev.PredictedIntent.Confidence
		if ev.Outcome == model.OutcomeSuccessful {
			b.successes++
		}
		if ev.Helpful != nil {
			if *ev.Helpful {
				b.metric.UserSatisfaction.Helpful++
			} else {
				b.metric.UserSatisfaction.NotHelpful++
			}
		}
	}

	out := make([]UsageMetric, 0, len(buckets))
	for _, b := range buckets {
		m := b.metric
		m.SuccessRate = float64(b.successes) / float64(m.TotalUsage)
		m.AverageConfidence = b.confidence / float64(m.TotalUsage)
		m.PopularityScore = float64(m.TotalUsage) * m.SuccessRate
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PopularityScore != out[j].PopularityScore {
			return out[i].PopularityScore > out[j].PopularityScore
		}
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Action < out[j].Action
	})
	return out
}

// aggregateAccuracy only counts events carrying ground truth, keyed by
// the predicted category.
func aggregateAccuracy(events []model.ClassificationEvent) map[model.Category]*AccuracyMetric {
	type pairCount struct {
		predicted, actual string
		count             int
	}
	confidences := map[model.Category]float64{}
	pairs := map[model.Category]map[string]*pairCount{}
	out := map[model.Category]*AccuracyMetric{}

	for _, ev := range events {
		if !ev.HasGroundTruth() {
			continue
		}
		cat := ev.PredictedIntent.Category
		m, ok := out[cat]
		if !ok {
			m = &AccuracyMetric{}
			out[cat] = m
			pairs[cat] = map[string]*pairCount{}
		}
		m.TotalPredictions++
		confidences[cat] += ev.PredictedIntent.Confidence

		predicted := ev.PredictedIntent.Key()
		actual := ev.ActualIntent.Key()
		if predicted == actual {
			m.CorrectPredictions++
			continue
		}
		pk := predicted + "->" + actual
		pc, ok := pairs[cat][pk]
		if !ok {
			pc = &pairCount{predicted: predicted, actual: actual}
			pairs[cat][pk] = pc
		}
		pc.count++
	}

	for cat, m := range out {
		m.Accuracy = float64(m.CorrectPredictions) / float64(m.TotalPredictions)
		m.AverageConfidence = confidences[cat] / float64(m.TotalPredictions)

		list := make([]Misclassification, 0, len(pairs[cat]))
		for _, pc := range pairs[cat] {
			list = append(list, Misclassification{Predicted: pc.predicted, Actual: pc.actual, Count: pc.count})
		}
		sort.Slice(list, func(i, j int) bool {
			if list[i].Count != list[j].Count {
				return list[i].Count > list[j].Count
			}
			return list[i].Predicted < list[j].Predicted
		})
		if len(list) > topMisclassificationCount {
			list = list[:topMisclassificationCount]
		}
		m.CommonMisclassifications = list
	}
	return out
}

func buildOverview(events []model.ClassificationEvent, usage []UsageMetric) Overview {
	ov := Overview{TotalEvents: len(events)}
	successes := 0
	for _, ev := range events {
		if ev.HandledLocally {
			ov.HandledLocally++
		}
		if ev.FromCache {
			ov.CacheHits++
		}
		if ev.Outcome == model.OutcomeSuccessful {
			successes++
		}
	}
	if len(events) > 0 {
		ov.AverageSuccessRate = float64(successes) / float64(len(events))
	}
	top := usage
	if len(top) > topPromptCount {
		top = top[:topPromptCount]
	}
	ov.TopPerformingPrompts = append([]UsageMetric(nil), top...)
	return ov
}
