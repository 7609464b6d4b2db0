package http

import (
	"errors"
	"net/http"

	"fitness-agent/internal/model"
	"fitness-agent/internal/reminder"
	pkgErrors "fitness-agent/pkg/errors"
)

var (
	errWrongBody           = pkgErrors.NewHTTPError(130001, "Wrong body")
	errUserIDMissing       = pkgErrors.NewHTTPError(130002, "user_id is required")
	errCalendarUnavailable = pkgErrors.NewHTTPError(130004, "Calendar is unavailable").WithStatus(http.StatusBadGateway)
)

// mapError translates domain errors into HTTP errors. Anything unmapped is
// returned as is and reported as a 500.
func (h *handler) mapError(err error) error {
	var ve *model.ValidationError
	switch {
	case errors.Is(err, reminder.ErrCalendarUnavailable):
		return errCalendarUnavailable
	case errors.As(err, &ve):
		return pkgErrors.NewHTTPError(130003, ve.Err.Error())
	default:
		return err
	}
}
