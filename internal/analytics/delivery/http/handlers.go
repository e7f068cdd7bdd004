package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"luna-assistant/internal/analytics"
	"luna-assistant/internal/model"
	"luna-assistant/pkg/response"
)

type dashboardReq struct {
	Category string `form:"category" binding:"max=64"`
	Since    string `form:"since"` // RFC 3339
}

func (r dashboardReq) toFilter() (analytics.Filter, error) {
	f := analytics.Filter{Category: model.Category(r.Category)}
	if r.Since != "" {
		since, err := time.Parse(time.RFC3339, r.Since)
		if err != nil {
			return f, err
		}
		f.Since = since
	}
	return f, nil
}

// Dashboard godoc
// @Summary     Analytics dashboard
// @Description Returns usage, accuracy and insight aggregates over the retained event window.
// @Tags        Analytics
// @Accept      json
// @Produce     json
// @Param       category query string false "Restrict to one intent category"
// @Param       since    query string false "Only include events at or after this RFC 3339 timestamp"
// @Success     200 {object} analytics.Dashboard
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/analytics/dashboard [GET]
func (h *handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	var req dashboardReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}
	filter, err := req.toFilter()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	response.OK(c, h.tracker.Aggregate(ctx, filter))
}

// Events godoc
// @Summary     Export classification events
// @Description Returns the raw retained events, oldest first, for offline analysis.
// @Tags        Analytics
// @Accept      json
// @Produce     json
// @Success     200 {object} eventsResp
// @Router      /api/v1/analytics/events [GET]
func (h *handler) Events(c *gin.Context) {
	ctx := c.Request.Context()

	events := h.tracker.Export(ctx)
	response.OK(c, eventsResp{
		Events: events,
		Total:  len(events),
	})
}

type eventsResp struct {
	Events []model.ClassificationEvent `json:"events"`
	Total  int                         `json:"total"`
}
