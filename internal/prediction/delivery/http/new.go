package http

import (
	"github.com/gin-gonic/gin"

	"healthsmart-chatbot/internal/prediction"
	"healthsmart-chatbot/pkg/log"
)

// Handler is the public interface for the prediction HTTP delivery layer.
type Handler interface {
	Predict(c *gin.Context)
	ListLogs(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc prediction.UseCase
}

// New creates a new HTTP handler for the prediction domain.
func New(l log.Logger, uc prediction.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
