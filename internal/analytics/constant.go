package analytics

const (
	trackerLogPrefix = "analytics.tracker"

	// DefaultCapacity bounds the in-memory event window.
	DefaultCapacity = 1000

	// topPromptCount limits Overview.TopPerformingPrompts.
	topPromptCount = 5
	// topMisclassificationCount limits per-category misclassification lists.
	topMisclassificationCount = 3

	// minInsightSample is the minimum ground-truth sample before accuracy
	// insights are emitted.
	minInsightSample = 5

	lowAccuracyThreshold    = 0.6
	overconfidentConfidence = 0.7
	overconfidentSuccess    = 0.5
)
