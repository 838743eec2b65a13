package http

import (
	"github.com/gin-gonic/gin"
)

// processPredictReq binds the feature body.
func (h *handler) processPredictReq(c *gin.Context) (predictReq, error) {
	var req predictReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListLogsReq binds the list query parameters.
func (h *handler) processListLogsReq(c *gin.Context) (listLogsReq, error) {
	var req listLogsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
