package http

import (
	"net/http"

	"lockers/internal/core/application/usecases/commands"
	"lockers/internal/core/application/usecases/queries"
	"lockers/internal/core/domain/model/request"
	"lockers/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type createRequestBody struct {
	Boleta   string `json:"boleta"`
	FullName string `json:"fullName"`
	Semester string `json:"semester"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type decideRequestBody struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

type requestResponse struct {
	ID              uint64 `json:"id"`
	UserID          uint64 `json:"userId"`
	Boleta          string `json:"boleta"`
	FullName        string `json:"fullName"`
	Semester        string `json:"semester"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Status          string `json:"status"`
	RejectionReason string `json:"rejectionReason,omitempty"`
}

func toRequestResponse(r queries.RequestResponse) requestResponse {
	return requestResponse{
		ID:              r.ID,
		UserID:          r.UserID,
		Boleta:          r.Boleta,
		FullName:        r.FullName,
		Semester:        r.Semester,
		Email:           r.Email,
		Phone:           r.Phone,
		Status:          r.Status,
		RejectionReason: r.RejectionReason,
	}
}

// CreateRequest handles POST /api/v1/requests.
func (s *Server) CreateRequest(ctx echo.Context) error {
	var body createRequestBody
	if err := ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidError("body"))
	}

	cmd, err := commands.NewCreateRequestCommand(
		principalFrom(ctx), body.Boleta, body.FullName, body.Semester, body.Email, body.Phone,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := s.commands.CreateRequest.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: id})
}

// GetAllRequests handles GET /api/v1/requests.
func (s *Server) GetAllRequests(ctx echo.Context) error {
	query, err := queries.NewGetAllRequestsQuery(principalFrom(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	results, err := s.queries.GetAllRequests.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]requestResponse, len(results))
	for i, r := range results {
		response[i] = toRequestResponse(r)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetUserRequest handles GET /api/v1/requests/user/:id.
func (s *Server) GetUserRequest(ctx echo.Context) error {
	userID, err := pathID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetUserRequestQuery(principalFrom(ctx), userID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.queries.GetUserRequest.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRequestResponse(result))
}

// DecideRequest handles PUT /api/v1/requests/:id/status.
func (s *Server) DecideRequest(ctx echo.Context) error {
	requestID, err := pathID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var body decideRequestBody
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidError("body"))
	}

	decision, err := request.StatusFromString(body.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDecideRequestCommand(principalFrom(ctx), requestID, decision, body.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.commands.DecideRequest.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteRequest handles DELETE /api/v1/requests/:id.
func (s *Server) DeleteRequest(ctx echo.Context) error {
	requestID, err := pathID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteRequestCommand(principalFrom(ctx), requestID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.commands.DeleteRequest.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
