package http

import (
	"errors"
	"net/http"

	"fitness-agent/internal/goal"
	"fitness-agent/internal/model"
	pkgErrors "fitness-agent/pkg/errors"
)

var (
	errWrongBody     = pkgErrors.NewHTTPError(110001, "Wrong body")
	errUserIDMissing = pkgErrors.NewHTTPError(110002, "user_id is required")
	errGoalNotFound  = pkgErrors.NewHTTPError(110004, "No goal found for user").WithStatus(http.StatusNotFound)
)

// mapError translates domain errors into HTTP errors. Anything unmapped is
// returned as is and reported as a 500.
func (h *handler) mapError(err error) error {
	var ve *model.ValidationError
	switch {
	case errors.Is(err, goal.ErrGoalNotFound):
		return errGoalNotFound
	case errors.As(err, &ve):
		return pkgErrors.NewHTTPError(110003, ve.Err.Error())
	default:
		return err
	}
}
