package http

import (
	"github.com/gin-gonic/gin"

	"luna-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	an := rg.Group("/analytics")
	{
		an.GET("/dashboard", mw.RateLimit(), h.Dashboard)
		an.GET("/events", mw.RateLimit(), h.Events)
	}
}
