package http

import (
	"io"
	"strconv"

	"lockers/internal/core/application/usecases/commands"
	"lockers/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// readUpload extracts the "file" part of a multipart form: its bytes and the
// declared content type. The size cap is enforced here before buffering so an
// oversized upload never lands in memory.
func readUpload(ctx echo.Context) ([]byte, string, error) {
	header, err := ctx.FormFile("file")
	if err != nil {
		return nil, "", errs.NewValueIsRequiredError("file")
	}
	if header.Size > commands.MaxUploadSize {
		return nil, "", errs.NewValueIsTooLargeError("file", header.Size, commands.MaxUploadSize)
	}

	file, err := header.Open()
	if err != nil {
		return nil, "", errs.NewValueIsInvalidError("file")
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, commands.MaxUploadSize))
	if err != nil {
		return nil, "", errs.NewValueIsInvalidError("file")
	}

	return content, header.Header.Get("Content-Type"), nil
}

// formID parses a numeric identifier out of a multipart form value.
func formID(ctx echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(ctx.FormValue(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errs.NewValueIsInvalidError(name)
	}
	return id, nil
}
