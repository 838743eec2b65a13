package http

import (
	"github.com/gin-gonic/gin"

	"healthsmart-chatbot/internal/model"
	"healthsmart-chatbot/pkg/log"
	"healthsmart-chatbot/pkg/response"
)

// Predict godoc
// @Summary     Predict heart disease risk
// @Description Validates 13 clinical features and forwards them to the prediction service.
// @Tags        Prediction
// @Accept      json
// @Produce     json
// @Param       body body     predictReq  true "Clinical features"
// @Success     200  {object} predictResp
// @Failure     400  {object} response.Resp "Invalid features"
// @Failure     502  {object} response.Resp "Prediction service unavailable"
// @Router      /api/v1/predict [POST]
func (h *handler) Predict(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPredictReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc := model.Scope{
		RequestID: log.RequestIDFromContext(ctx),
		ClientIP:  c.ClientIP(),
	}
	output, err := h.uc.Predict(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Predict: %v", err)
		status, mapped := h.mapError(err)
		response.ErrorWithStatus(c, status, mapped)
		return
	}

	response.OK(c, h.newPredictResp(output))
}

// ListLogs godoc
// @Summary     List recent predictions
// @Description Returns the most recent logged predictions, newest first.
// @Tags        Prediction
// @Produce     json
// @Param       limit query    int false "Page size (default: 20, max: 100)"
// @Success     200   {object} listLogsResp
// @Failure     503   {object} response.Resp "Prediction log disabled"
// @Router      /api/v1/predictions [GET]
func (h *handler) ListLogs(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListLogsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListLogs(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListLogs: %v", err)
		status, mapped := h.mapError(err)
		response.ErrorWithStatus(c, status, mapped)
		return
	}

	response.OK(c, h.newListLogsResp(output))
}
