package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "fitness-agent/pkg/errors"
	"fitness-agent/pkg/response"
)

// Get godoc
// @Summary     Get a fitness summary
// @Description Aggregates the user's food logs over the period against their goal.
// @Tags        Summary
// @Produce     json
// @Param       user_id path  string true  "User ID"
// @Param       period  query string false "daily, weekly or monthly (default weekly)"
// @Success     200 {object} summaryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/summary/{user_id} [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGetReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	s, err := h.uc.ForPeriod(ctx, req.UserID, req.Period)
	if err != nil {
		if mapped, ok := h.mapError(err).(*pkgErrors.HTTPError); ok {
			response.Error(c, mapped, nil)
			return
		}
		h.l.Errorf(ctx, "summary.http.Get: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newSummaryResp(req.Period, s))
}
