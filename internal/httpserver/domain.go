package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	analyticsHTTP "luna-assistant/internal/analytics/delivery/http"
	assistantHTTP "luna-assistant/internal/assistant/delivery/http"
	"luna-assistant/internal/middleware"
)

// setupAssistantDomain registers /api/v1/assistant routes.
func (srv HTTPServer) setupAssistantDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := assistantHTTP.New(srv.l, srv.assistantUC)
	assistantHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Assistant domain registered")
	return nil
}

// setupAnalyticsDomain registers /api/v1/analytics routes.
func (srv HTTPServer) setupAnalyticsDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := analyticsHTTP.New(srv.l, srv.tracker)
	analyticsHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Analytics domain registered")
	return nil
}
