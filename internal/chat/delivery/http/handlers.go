package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"healthsmart-chatbot/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Routes a message to the emergency alert, a canned rule answer or the generative model.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body     chatReq   true "Message and optional session id"
// @Success     200  {object} chatResp
// @Failure     400  {object} errorResp "Malformed input"
// @Failure     502  {object} errorResp "Generative backend failed"
// @Router      /chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		h.l.Warnf(ctx, "chat.delivery.http.Chat: invalid request: %v", err)
		c.JSON(http.StatusBadRequest, errorResp{Error: bindErrorMessage(err)})
		return
	}

	output, err := h.uc.Chat(ctx, scopeFromContext(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		status, msg := h.mapError(err)
		c.JSON(status, errorResp{Error: msg})
		return
	}

	c.JSON(http.StatusOK, h.newChatResp(output))
}

// History godoc
// @Summary     Get session history
// @Description Returns the retained turns of a session, oldest first.
// @Tags        Chat
// @Produce     json
// @Param       id  path     string true "Session ID"
// @Success     200 {object} historyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sessions/{id}/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.History(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		status, msg := h.mapError(err)
		response.ErrorWithStatus(c, status, errors.New(msg))
		return
	}

	response.OK(c, h.newHistoryResp(output))
}

// ClearSession godoc
// @Summary     Clear a session
// @Description Forgets all turns of a session.
// @Tags        Chat
// @Produce     json
// @Param       id  path     string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sessions/{id} [DELETE]
func (h *handler) ClearSession(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.ClearSession(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.ClearSession: %v", err)
		status, msg := h.mapError(err)
		response.ErrorWithStatus(c, status, errors.New(msg))
		return
	}

	response.OK(c, nil)
}
