package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"luna-assistant/internal/model"
)

const (
	scopeContextKey = "luna.scope"

	headerUserID    = "X-User-ID"
	headerSessionID = "X-Session-ID"
)

// Scope reads caller identity from headers. There is no authentication
// here; identity is only used to key session memory, and a missing
// session ID gets a fresh one so every request still lands in a window.
func (m Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := model.Scope{
			UserID:    c.GetHeader(headerUserID),
			SessionID: c.GetHeader(headerSessionID),
		}
		if sc.SessionID == "" {
			sc.SessionID = uuid.NewString()
		}
		c.Set(scopeContextKey, sc)
		c.Next()
	}
}

// GetScope retrieves the request scope stored by Scope.
func GetScope(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeContextKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{SessionID: uuid.NewString()}
}
