package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"snowboarding-assistant/internal/usage"
	"snowboarding-assistant/pkg/response"
)

type quotaResp struct {
	Count       int       `json:"count"`
	Threshold   int       `json:"threshold"`
	Remaining   int       `json:"remaining"`
	Exceeded    bool      `json:"exceeded"`
	WindowStart time.Time `json:"window_start"`
	WindowEnd   time.Time `json:"window_end"`
}

type snapshotResp struct {
	Search  quotaResp `json:"search"`
	Request quotaResp `json:"request"`
}

func newQuotaResp(q usage.QuotaStatus) quotaResp {
	return quotaResp{
		Count:       q.Count,
		Threshold:   q.Threshold,
		Remaining:   max(q.Threshold-q.Count, 0),
		Exceeded:    q.Exceeded,
		WindowStart: q.WindowStart,
		WindowEnd:   q.WindowEnd,
	}
}

// Snapshot godoc
// @Summary     Usage snapshot
// @Description Reports the search quota and the request rate window.
// @Tags        Usage
// @Produce     json
// @Success     200 {object} snapshotResp
// @Router      /api/v1/usage [GET]
func (h *handler) Snapshot(c *gin.Context) {
	s := h.gv.Snapshot(c.Request.Context())
	response.OK(c, snapshotResp{
		Search:  newQuotaResp(s.Search),
		Request: newQuotaResp(s.Request),
	})
}
