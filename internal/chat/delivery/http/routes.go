package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterChatRoute maps the public chat endpoint.
func RegisterChatRoute(r gin.IRoutes, h Handler) {
	r.POST("/chat", h.Chat)
}

// RegisterSessionRoutes maps session management under rg.
func RegisterSessionRoutes(rg *gin.RouterGroup, h Handler) {
	sessions := rg.Group("/sessions")
	{
		sessions.GET("/:id/history", h.History)
		sessions.DELETE("/:id", h.ClearSession)
	}
}
