package http

import (
	"github.com/gin-gonic/gin"
)

// processMessageReq binds and validates the message body.
func (h *handler) processMessageReq(c *gin.Context) (processReq, error) {
	var req processReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processFeedbackReq binds and validates the feedback body.
func (h *handler) processFeedbackReq(c *gin.Context) (feedbackReq, error) {
	var req feedbackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
