package http

import (
	"github.com/gin-gonic/gin"

	"luna-assistant/internal/middleware"
	"luna-assistant/pkg/response"
)

// ProcessMessage godoc
// @Summary     Process an utterance
// @Description Classifies a free-text message, executes a local capability when confidence permits, and returns the routing decision.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string false "Session identifier for context memory"
// @Param       body body processReq true "Message and context hints"
// @Success     200 {object} processResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/messages [POST]
func (h *handler) ProcessMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMessageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc := middleware.GetScope(c)
	output, err := h.uc.Process(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Process: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newProcessResp(output))
}

// Feedback godoc
// @Summary     Submit classification feedback
// @Description Attaches the user's actual intent and satisfaction to a previously returned event.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body feedbackReq true "Ground truth for a past event"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Event not found or evicted"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/feedback [POST]
func (h *handler) Feedback(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFeedbackReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc := middleware.GetScope(c)
	if err := h.uc.Feedback(ctx, sc, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.Feedback: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}
