package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "fitness-agent/pkg/errors"
	"fitness-agent/pkg/response"
)

// Set godoc
// @Summary     Set or update a user's goal
// @Description Creates the user's fitness goal, or overwrites the existing one.
// @Tags        Goals
// @Accept      json
// @Produce     json
// @Param       user_id path string  true "User ID"
// @Param       body    body setReq true "Goal"
// @Success     200 {object} goalResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/goals/{user_id} [POST]
func (h *handler) Set(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Set(ctx, req.toInput())
	if err != nil {
		h.reportError(c, err)
		return
	}

	response.OK(c, h.newGoalResp(out.Goal))
}

// Get godoc
// @Summary     Get a user's goal
// @Description Returns the user's current fitness goal.
// @Tags        Goals
// @Produce     json
// @Param       user_id path string true "User ID"
// @Success     200 {object} goalResp
// @Failure     404 {object} response.Resp "No goal found for user"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/goals/{user_id} [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	userID := c.Param("user_id")
	if userID == "" {
		response.Error(c, errUserIDMissing, nil)
		return
	}

	g, err := h.uc.Get(ctx, userID)
	if err != nil {
		h.reportError(c, err)
		return
	}

	response.OK(c, h.newGoalResp(g))
}

func (h *handler) reportError(c *gin.Context, err error) {
	mapped := h.mapError(err)
	if _, ok := mapped.(*pkgErrors.HTTPError); ok {
		response.Error(c, mapped, nil)
		return
	}
	h.l.Errorf(c.Request.Context(), "goal.http: %v", err)
	response.InternalError(c, err)
}
