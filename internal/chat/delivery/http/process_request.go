package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"healthsmart-chatbot/internal/model"
	"healthsmart-chatbot/pkg/log"
)

// processChatReq binds and validates the chat request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// scopeFromContext builds the caller scope from the request.
func scopeFromContext(c *gin.Context) model.Scope {
	return model.Scope{
		RequestID: log.RequestIDFromContext(c.Request.Context()),
		ClientIP:  c.ClientIP(),
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
