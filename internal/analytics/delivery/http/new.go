package http

import (
	"github.com/gin-gonic/gin"

	"luna-assistant/internal/analytics"
	"luna-assistant/pkg/log"
)

// Handler is the public interface for the analytics HTTP delivery layer.
type Handler interface {
	Dashboard(c *gin.Context)
	Events(c *gin.Context)
}

type handler struct {
	l       log.Logger
	tracker analytics.Tracker
}

// New creates a new HTTP handler for the analytics domain.
func New(l log.Logger, tracker analytics.Tracker) *handler {
	return &handler{
		l:       l,
		tracker: tracker,
	}
}
