package mcp

import (
	"errors"
	"net/http"

	"fitness-agent/internal/goal"
	"fitness-agent/internal/model"
	pkgErrors "fitness-agent/pkg/errors"
)

var (
	errWrongBody   = pkgErrors.NewHTTPError(160001, "Wrong body")
	errUnknownTool = pkgErrors.NewHTTPError(160002, "Unknown tool").WithStatus(http.StatusNotFound)
)

// toolError reports whether err is the caller's fault and belongs in an
// isError tool result rather than a 500.
func toolError(err error) bool {
	var ve *model.ValidationError
	return errors.As(err, &ve) || errors.Is(err, goal.ErrGoalNotFound)
}
