package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

func (h *handler) processSendReq(c *gin.Context) (sendReq, error) {
	var req sendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	return req, nil
}

func (h *handler) processLocationReq(c *gin.Context) (locationReq, error) {
	var req locationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	req.SessionID = c.Param("id")
	return req, nil
}
