package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"luna-assistant/internal/analytics"
	"luna-assistant/internal/assistant"
	"luna-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Engine domains
	assistantUC     assistant.UseCase
	tracker         analytics.Tracker
	rateLimitPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	AssistantUC     assistant.UseCase
	Tracker         analytics.Tracker
	RateLimitPerMin int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		assistantUC:     cfg.AssistantUC,
		tracker:         cfg.Tracker,
		rateLimitPerMin: cfg.RateLimitPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.assistantUC == nil {
		return errors.New("assistant use case is required")
	}
	if srv.tracker == nil {
		return errors.New("tracker is required")
	}
	return nil
}
