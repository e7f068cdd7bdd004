package usecase

import (
	"time"

	"luna-assistant/internal/analytics"
	"luna-assistant/internal/assistant"
	"luna-assistant/pkg/log"
)

// Config tunes the routing policy. Zero values fall back to the package
// defaults.
type Config struct {
	ThresholdHandle   float64
	ThresholdFallback float64
	CacheTTL          time.Duration
}

func (c Config) withDefaults() Config {
	if c.ThresholdHandle == 0 {
		c.ThresholdHandle = ThresholdHandle
	}
	if c.ThresholdFallback == 0 {
		c.ThresholdFallback = ThresholdFallback
	}
	if c.CacheTTL == 0 {
		c.CacheTTL = DefaultCacheTTL
	}
	return c
}

// implUseCase is the private implementation of assistant.UseCase.
type implUseCase struct {
	l          log.Logger
	classifier assistant.Classifier
	resolver   assistant.ContextResolver
	registry   assistant.CapabilityRegistry
	cache      assistant.ResultCache
	tracker    analytics.Tracker
	cfg        Config
}

// New creates a new assistant UseCase implementation.
func New(
	l log.Logger,
	classifier assistant.Classifier,
	resolver assistant.ContextResolver,
	registry assistant.CapabilityRegistry,
	cache assistant.ResultCache,
	tracker analytics.Tracker,
	cfg Config,
) *implUseCase {
	return &implUseCase{
		l:          l,
		classifier: classifier,
		resolver:   resolver,
		registry:   registry,
		cache:      cache,
		tracker:    tracker,
		cfg:        cfg.withDefaults(),
	}
}
