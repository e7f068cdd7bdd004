package analytics

import (
	"fmt"
	"sort"

	"luna-assistant/internal/model"
)

// deriveInsights flags categories whose ground-truth accuracy is poor and
// intents the engine is confident about but keeps getting wrong. Small
// samples are skipped to avoid noisy recommendations.
func deriveInsights(usage []UsageMetric, accuracy map[model.Category]*AccuracyMetric) []Insight {
	var insights []Insight

	cats := make([]model.Category, 0, len(accuracy))
	for cat := range accuracy {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })

	for _, cat := range cats {
		m := accuracy[cat]
		if m.TotalPredictions < minInsightSample {
			continue
		}
		if m.Accuracy < lowAccuracyThreshold {
			insights = append(insights, Insight{
				Type:     "low_accuracy",
				Category: cat,
				Message: fmt.Sprintf("accuracy for %s is %.0f%% over %d labeled events, review its trigger phrases",
					cat, m.Accuracy*100, m.TotalPredictions),
			})
		}
	}

	for _, u := range usage {
		if u.TotalUsage < minInsightSample {
			continue
		}
		if u.AverageConfidence > overconfidentConfidence && u.SuccessRate < overconfidentSuccess {
			insights = append(insights, Insight{
				Type:     "overconfident",
				Category: u.Category,
				Message: fmt.Sprintf("%s/%s scores %.0f%% average confidence but succeeds only %.0f%% of the time",
					u.Category, u.Action, u.AverageConfidence*100, u.SuccessRate*100),
			})
		}
	}

	if len(usage) > 0 && usage[0].TotalUsage >= minInsightSample {
		top := usage[0]
		insights = append(insights, Insight{
			Type:     "usage_pattern",
			Category: top.Category,
			Message: fmt.Sprintf("%s/%s is the most popular intent with %d uses and a %.0f%% success rate",
				top.Category, top.Action, top.TotalUsage, top.SuccessRate*100),
		})
	}

	return insights
}
