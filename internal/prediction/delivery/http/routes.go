package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the prediction endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/predict", h.Predict)
	rg.GET("/predictions", h.ListLogs)
}
