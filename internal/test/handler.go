package test

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"snowboarding-assistant/pkg/response"
)

// HandleClassify runs only the intent classifier on a message
// @Summary Classify a test message
// @Description Classify a message against the stored session history without calling the assistant model
// @Tags test
// @Accept json
// @Produce json
// @Param request body ClassifyRequest true "Test message"
// @Success 200 {object} ClassifyResponse
// @Router /test/classify [post]
func (h *handler) HandleClassify(c *gin.Context) {
	ctx := c.Request.Context()

	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}
	if req.SessionID == "" {
		req.SessionID = defaultSessionID
	}

	hist, err := h.chat.History(ctx, req.SessionID)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out := h.router.Classify(ctx, req.Text, hist.History)

	h.l.Infof(ctx, "internal.test.HandleClassify: text=%q search=%t location=%t degraded=%t",
		req.Text, out.Decision.NeedsSearch, out.Decision.NeedsLocation, out.Degraded)

	response.OK(c, ClassifyResponse{
		Text:         req.Text,
		SessionID:    req.SessionID,
		Decision:     out.Decision,
		Attempts:     out.Attempts,
		Degraded:     out.Degraded,
		Reason:       out.Reason,
		Raw:          out.Raw,
		HistoryTurns: len(hist.History),
	})
}

// HandleResetSession resets the conversation session for a test user
// @Summary Reset test session
// @Description Clear conversation history and location for a session
// @Tags test
// @Accept json
// @Produce json
// @Param request body ResetSessionRequest true "Reset session"
// @Success 200 {object} ResetSessionResponse
// @Router /test/reset [post]
func (h *handler) HandleResetSession(c *gin.Context) {
	ctx := c.Request.Context()

	var req ResetSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}
	if req.SessionID == "" {
		req.SessionID = defaultSessionID
	}

	if err := h.chat.Reset(ctx, req.SessionID); err != nil {
		response.Error(c, err, nil)
		return
	}

	h.l.Infof(ctx, "internal.test.HandleResetSession: cleared session %s", req.SessionID)

	response.OK(c, ResetSessionResponse{
		Message:   fmt.Sprintf("Session %s cleared", req.SessionID),
		SessionID: req.SessionID,
	})
}

// HandleHealthCheck returns the health status of test endpoints
// @Summary Test health check
// @Description Check if test endpoints are available
// @Tags test
// @Produce json
// @Success 200 {object} HealthCheckResponse
// @Router /test/health [get]
func (h *handler) HandleHealthCheck(c *gin.Context) {
	response.OK(c, HealthCheckResponse{
		Status:  "ok",
		Message: "Test endpoints are available",
	})
}
