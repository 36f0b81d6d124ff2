package http

import (
	"net/http"

	"lockers/internal/core/application/usecases/commands"
	"lockers/internal/core/application/usecases/queries"
	"lockers/internal/core/domain/model/payment"
	"lockers/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type validatePaymentBody struct {
	Validated bool   `json:"validated"`
	PayStatus string `json:"payStatus"`
	Reason    string `json:"reason"`
}

type paymentResponse struct {
	ID              uint64 `json:"id"`
	RequestID       uint64 `json:"requestId"`
	ProofURL        string `json:"proofUrl"`
	Validated       bool   `json:"validated"`
	PayStatus       string `json:"payStatus"`
	RejectionReason string `json:"rejectionReason,omitempty"`
}

func toPaymentResponse(p queries.PaymentResponse) paymentResponse {
	return paymentResponse{
		ID:              p.ID,
		RequestID:       p.RequestID,
		ProofURL:        p.ProofURL,
		Validated:       p.Validated,
		PayStatus:       p.PayStatus,
		RejectionReason: p.RejectionReason,
	}
}

// SubmitPaymentProof handles POST /api/v1/payments. The body is a multipart
// form with a "file" part (jpeg, png, or pdf) plus a "requestId" value.
func (s *Server) SubmitPaymentProof(ctx echo.Context) error {
	requestID, err := formID(ctx, "requestId")
	if err != nil {
		return writeError(ctx, err)
	}

	content, contentType, err := readUpload(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSubmitPaymentProofCommand(principalFrom(ctx), requestID, content, contentType)
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := s.commands.SubmitPaymentProof.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: id})
}

// ValidatePayment handles PUT /api/v1/payments/:id/validate.
func (s *Server) ValidatePayment(ctx echo.Context) error {
	paymentID, err := pathID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var body validatePaymentBody
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidError("body"))
	}

	payStatus, err := payment.PayStatusFromString(body.PayStatus)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewValidatePaymentCommand(
		principalFrom(ctx), paymentID, body.Validated, payStatus, body.Reason,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.commands.ValidatePayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetLatestPayment handles GET /api/v1/payments/request/:id.
func (s *Server) GetLatestPayment(ctx echo.Context) error {
	requestID, err := pathID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetLatestPaymentQuery(principalFrom(ctx), requestID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.queries.GetLatestPayment.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPaymentResponse(result))
}

// GetPaymentHistory handles GET /api/v1/payments/request/:id/history.
func (s *Server) GetPaymentHistory(ctx echo.Context) error {
	requestID, err := pathID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetPaymentHistoryQuery(principalFrom(ctx), requestID)
	if err != nil {
		return writeError(ctx, err)
	}

	results, err := s.queries.GetPaymentHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]paymentResponse, len(results))
	for i, p := range results {
		response[i] = toPaymentResponse(p)
	}
	return ctx.JSON(http.StatusOK, response)
}
