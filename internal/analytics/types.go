package analytics

import (
	"time"

	"luna-assistant/internal/model"
)

// Satisfaction counts explicit helpful / not-helpful feedback.
type Satisfaction struct {
	Helpful    int `json:"helpful"`
	NotHelpful int `json:"not_helpful"`
}

// UsageMetric is the derived per-(category, action) usage view.
// PopularityScore is totalUsage × successRate.
type UsageMetric struct {
	Category          model.Category `json:"category"`
	Action            model.Action   `json:"action"`
	TotalUsage        int            `json:"total_usage"`
	SuccessRate       float64        `json:"success_rate"`
	AverageConfidence float64        `json:"average_confidence"`
	UserSatisfaction  Satisfaction   `json:"user_satisfaction"`
	PopularityScore   float64        `json:"popularity_score"`
}

// Misclassification is one (predicted, actual) pair with its frequency.
type Misclassification struct {
	Predicted string `json:"predicted"` // category/action
	Actual    string `json:"actual"`
	Count     int    `json:"count"`
}

// AccuracyMetric is the derived per-category accuracy view, computed only
// over events carrying ground truth.
type AccuracyMetric struct {
	TotalPredictions         int                 `json:"total_predictions"`
	CorrectPredictions       int                 `json:"correct_predictions"`
	Accuracy                 float64             `json:"accuracy"`
	AverageConfidence        float64             `json:"average_confidence"`
	CommonMisclassifications []Misclassification `json:"common_misclassifications"`
}

// Overview summarizes the whole event window.
type Overview struct {
	TotalEvents          int           `json:"total_events"`
	HandledLocally       int           `json:"handled_locally"`
	CacheHits            int           `json:"cache_hits"`
	AverageSuccessRate   float64       `json:"average_success_rate"`
	TopPerformingPrompts []UsageMetric `json:"top_performing_prompts"`
}

// Insight is a derived recommendation for reporting UIs.
type Insight struct {
	Type     string         `json:"type"` // low_accuracy | overconfident | usage_pattern
	Category model.Category `json:"category,omitempty"`
	Message  string         `json:"message"`
}

// Dashboard is the JSON-serializable aggregate snapshot for reporting.
type Dashboard struct {
	Overview    Overview                           `json:"overview"`
	Performance []UsageMetric                      `json:"performance"`
	Accuracy    map[model.Category]*AccuracyMetric `json:"accuracy"`
	Insights    []Insight                          `json:"insights"`
	GeneratedAt time.Time                          `json:"generated_at"`
}

// Filter narrows an aggregation. Zero values mean "no restriction".
type Filter struct {
	Category model.Category
	Since    time.Time
}
