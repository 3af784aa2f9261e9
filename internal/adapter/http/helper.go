package http

import (
	"strconv"
	"strings"

	"loanflow/internal/domain/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps a usecase error onto the wire: business errors keep their
// catalog shape, anything else becomes the generic internal error.
func writeError(c echo.Context, err error) error {
	be := errs.AsBusiness(err)
	return c.JSON(be.Status, ErrorResponse{
		Code:    be.Code,
		Error:   be.Title,
		Message: be.Message,
		Errors:  be.Fields,
	})
}

// parseSafe parses a query integer, falling back to def on anything odd.
func parseSafe(raw string, def int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
