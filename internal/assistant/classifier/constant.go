package classifier

// Signal weights. Phrases and patterns are stronger evidence than single
// keywords; two independent keywords are enough to clear the local-handling
// confidence threshold downstream.
const (
	WeightKeyword = 1.0
	WeightPhrase  = 2.5
	WeightPattern = 2.5
)

// Score-to-confidence mapping: confidence = Base + Slope * score, clamped
// to MaxConfidence. FallbackConfidence is used when no template clears
// MinSignalScore.
const (
	BaseConfidence     = 0.30
	ConfidenceSlope    = 0.13
	MaxConfidence      = 0.95
	FallbackConfidence = 0.20
	MinSignalScore     = 1.0
)

// Disambiguation. The module table is consulted only when the top-two score
// margin is below ScoreMarginDelta; a module-confirmed winner gains
// ContextBoost confidence.
const (
	ScoreMarginDelta = 1.5
	ContextBoost     = 0.10
)
