package http

import (
	"errors"
	"net/http"

	"fitness-agent/internal/model"
	pkgErrors "fitness-agent/pkg/errors"
)

var (
	errWrongBody     = pkgErrors.NewHTTPError(140001, "Wrong body")
	errRequestFailed = pkgErrors.NewHTTPError(140004, "Request failed").WithStatus(http.StatusInternalServerError)
)

// mapError translates domain errors into HTTP errors. Anything unmapped is
// returned as is and reported as a 500.
func (h *handler) mapError(err error) error {
	var ve *model.ValidationError
	if errors.As(err, &ve) {
		return pkgErrors.NewHTTPError(140003, ve.Err.Error())
	}
	return err
}
