package http

import (
	"net/http"

	"lockers/internal/core/application/usecases/commands"
	"lockers/internal/core/application/usecases/queries"
	"lockers/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type createLockerBody struct {
	Number   int    `json:"number"`
	Location string `json:"location"`
}

type setAvailabilityBody struct {
	Available bool `json:"available"`
}

type lockerResponse struct {
	ID        uint64 `json:"id"`
	Number    int    `json:"number"`
	Location  string `json:"location"`
	Available bool   `json:"available"`
}

// CreateLocker handles POST /api/v1/lockers.
func (s *Server) CreateLocker(ctx echo.Context) error {
	var body createLockerBody
	if err := ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidError("body"))
	}

	cmd, err := commands.NewCreateLockerCommand(principalFrom(ctx), body.Number, body.Location)
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := s.commands.CreateLocker.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: id})
}

func (s *Server) listLockers(ctx echo.Context, onlyAvailable bool) error {
	query, err := queries.NewGetLockersQuery(principalFrom(ctx), onlyAvailable)
	if err != nil {
		return writeError(ctx, err)
	}

	results, err := s.queries.GetLockers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]lockerResponse, len(results))
	for i, l := range results {
		response[i] = lockerResponse{
			ID:        l.ID,
			Number:    l.Number,
			Location:  l.Location,
			Available: l.Available,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetAllLockers handles GET /api/v1/lockers.
func (s *Server) GetAllLockers(ctx echo.Context) error {
	return s.listLockers(ctx, false)
}

// GetAvailableLockers handles GET /api/v1/lockers/available.
func (s *Server) GetAvailableLockers(ctx echo.Context) error {
	return s.listLockers(ctx, true)
}

// SetLockerAvailability handles PUT /api/v1/lockers/:id/availability.
func (s *Server) SetLockerAvailability(ctx echo.Context) error {
	lockerID, err := pathID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var body setAvailabilityBody
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidError("body"))
	}

	cmd, err := commands.NewSetLockerAvailabilityCommand(principalFrom(ctx), lockerID, body.Available)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.commands.SetLockerAvailability.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteLocker handles DELETE /api/v1/lockers/:id.
func (s *Server) DeleteLocker(ctx echo.Context) error {
	lockerID, err := pathID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteLockerCommand(principalFrom(ctx), lockerID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.commands.DeleteLocker.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
