package http

import (
	"errors"

	"fitness-agent/internal/model"
	pkgErrors "fitness-agent/pkg/errors"
)

var (
	errUserIDMissing = pkgErrors.NewHTTPError(120001, "user_id is required")
	errWrongPeriod   = pkgErrors.NewHTTPError(120002, model.ErrInvalidSummaryPeriod.Error())
)

func (h *handler) mapError(err error) error {
	var ve *model.ValidationError
	if errors.As(err, &ve) {
		return pkgErrors.NewHTTPError(120003, ve.Err.Error())
	}
	return err
}
