package http

import (
	"github.com/gin-gonic/gin"

	"snowboarding-assistant/pkg/response"
)

// SendMessage godoc
// @Summary     Send a chat message
// @Description Runs one assistant turn. Omit session_id to start a new conversation.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body sendReq true "Message"
// @Success     200 {object} sendResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/messages [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendReq(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	output, err := h.uc.Send(ctx, req.toInput())
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newSendResp(output))
}

// GetSession godoc
// @Summary     Get a chat session
// @Description Returns the stored history and location consent of a session.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/chat/sessions/{id} [GET]
func (h *handler) GetSession(c *gin.Context) {
	output, err := h.uc.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newSessionResp(output))
}

// ResetSession godoc
// @Summary     Reset a chat session
// @Description Forgets the history and location consent of a session.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/chat/sessions/{id} [DELETE]
func (h *handler) ResetSession(c *gin.Context) {
	if err := h.uc.Reset(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, nil)
}

// GrantLocation godoc
// @Summary     Share location
// @Description Grants location consent for a session. The address is reverse geocoded when omitted.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       id   path string      true "Session ID"
// @Param       body body locationReq true "Coordinates"
// @Success     200 {object} locationStateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/chat/sessions/{id}/location [PUT]
func (h *handler) GrantLocation(c *gin.Context) {
	req, err := h.processLocationReq(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	output, err := h.uc.GrantLocation(c.Request.Context(), req.toInput())
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newLocationStateResp(output))
}

// RevokeLocation godoc
// @Summary     Stop sharing location
// @Description Revokes location consent for a session.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} locationStateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/chat/sessions/{id}/location [DELETE]
func (h *handler) RevokeLocation(c *gin.Context) {
	output, err := h.uc.RevokeLocation(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newLocationStateResp(output))
}
