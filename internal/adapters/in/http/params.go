package http

import (
	"strconv"

	"lockers/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// pathID parses the named path parameter as a positive integer identifier.
func pathID(ctx echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errs.NewValueIsInvalidError(name)
	}
	return id, nil
}
