package http

import (
	"net/http"
	"time"

	"lockers/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

type processStatusResponse struct {
	RequestID        *uint64            `json:"requestId"`
	RequestStatus    *string            `json:"requestStatus"`
	RejectionReason  *string            `json:"rejectionReason"`
	Documents        []documentResponse `json:"documents"`
	PaymentValidated *bool              `json:"paymentValidated"`
	PaymentStatus    *string            `json:"paymentStatus"`
	PaymentReason    *string            `json:"paymentReason"`
	LockerNumber     *int               `json:"lockerNumber"`
	LockerLocation   *string            `json:"lockerLocation"`
	AssignedAt       *time.Time         `json:"assignedAt"`
}

func toProcessStatusResponse(r queries.ProcessStatusResponse) processStatusResponse {
	return processStatusResponse{
		RequestID:        r.RequestID,
		RequestStatus:    r.RequestStatus,
		RejectionReason:  r.RejectionReason,
		Documents:        toDocumentResponses(r.Documents),
		PaymentValidated: r.PaymentValidated,
		PaymentStatus:    r.PaymentStatus,
		PaymentReason:    r.PaymentReason,
		LockerNumber:     r.LockerNumber,
		LockerLocation:   r.LockerLocation,
		AssignedAt:       r.AssignedAt,
	}
}

// GetOwnProcessStatus handles GET /api/v1/users/process-status.
func (s *Server) GetOwnProcessStatus(ctx echo.Context) error {
	query, err := queries.NewGetProcessStatusQuery(principalFrom(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.queries.GetProcessStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProcessStatusResponse(result))
}

// GetUserProcessStatus handles GET /api/v1/users/:id/process-status.
func (s *Server) GetUserProcessStatus(ctx echo.Context) error {
	userID, err := pathID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetProcessStatusQueryForUser(principalFrom(ctx), userID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.queries.GetProcessStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProcessStatusResponse(result))
}
