package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"snowboarding-assistant/pkg/response"
)

// List godoc
// @Summary     List resorts
// @Description Lists indexed resorts. q filters by name, region, state or country.
// @Tags        Resorts
// @Produce     json
// @Param       q query string false "Filter"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/resorts [GET]
func (h *handler) List(c *gin.Context) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.writeError(c, fmt.Errorf("%w: %v", errInvalidQuery, err))
		return
	}

	resorts, err := h.uc.List(c.Request.Context(), req.Query)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newListResp(resorts))
}

// Nearest godoc
// @Summary     Nearest resorts
// @Description Ranks resorts by distance in miles from a point.
// @Tags        Resorts
// @Produce     json
// @Param       lat   query number  true  "Latitude"
// @Param       lon   query number  true  "Longitude"
// @Param       q     query string  false "Filter"
// @Param       limit query integer false "Max results (default 5, max 50)"
// @Success     200 {object} nearestResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/resorts/nearest [GET]
func (h *handler) Nearest(c *gin.Context) {
	var req nearestReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.writeError(c, fmt.Errorf("%w: %v", errInvalidQuery, err))
		return
	}

	out, err := h.uc.Nearest(c.Request.Context(), req.toInput())
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newNearestResp(out))
}
