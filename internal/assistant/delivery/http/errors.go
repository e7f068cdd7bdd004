package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"luna-assistant/internal/assistant"
	"luna-assistant/pkg/response"
)

// mapError translates domain errors into HTTP responses. Unknown errors
// become opaque 500s.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, assistant.ErrEmptyInput),
		errors.Is(err, assistant.ErrInvalidFeedback):
		response.Error(c, err, nil)
	case errors.Is(err, assistant.ErrEventNotFound):
		response.NotFound(c, err)
	default:
		response.InternalError(c, err)
	}
}
