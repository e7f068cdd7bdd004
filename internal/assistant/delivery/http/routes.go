package http

import (
	"github.com/gin-gonic/gin"

	"luna-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	asst := rg.Group("/assistant")
	{
		asst.POST("/messages", mw.RateLimit(), mw.Scope(), h.ProcessMessage)
		asst.POST("/feedback", mw.RateLimit(), mw.Scope(), h.Feedback)
	}
}
