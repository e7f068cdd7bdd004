package usecase

import "time"

const (
	logPrefix = "assistant.usecase"

	// ThresholdHandle is the minimum confidence for executing a local
	// capability directly.
	ThresholdHandle = 0.55
	// ThresholdFallback is the minimum confidence for handing the remote
	// assistant a structured intent hint. Below it the intent is rejected.
	ThresholdFallback = 0.30

	// DefaultCacheTTL bounds how long a memoized result stays valid.
	DefaultCacheTTL = 5 * time.Minute
)
