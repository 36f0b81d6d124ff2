package http

import (
	"fmt"
	"net/http"
	"time"

	"lockers/internal/core/application/usecases/commands"
	"lockers/internal/core/application/usecases/queries"
	"lockers/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type createAssignmentBody struct {
	PaymentID uint64 `json:"paymentId"`
	LockerID  uint64 `json:"lockerId"`
}

type assignmentResponse struct {
	ID             uint64    `json:"id"`
	PaymentID      uint64    `json:"paymentId"`
	LockerID       uint64    `json:"lockerId"`
	LockerNumber   int       `json:"lockerNumber"`
	LockerLocation string    `json:"lockerLocation"`
	StudentName    string    `json:"studentName"`
	Boleta         string    `json:"boleta"`
	AssignedAt     time.Time `json:"assignedAt"`
}

func toAssignmentResponses(results []queries.AssignmentResponse) []assignmentResponse {
	response := make([]assignmentResponse, len(results))
	for i, a := range results {
		response[i] = assignmentResponse{
			ID:             a.ID,
			PaymentID:      a.PaymentID,
			LockerID:       a.LockerID,
			LockerNumber:   a.LockerNumber,
			LockerLocation: a.LockerLocation,
			StudentName:    a.StudentName,
			Boleta:         a.Boleta,
			AssignedAt:     a.AssignedAt,
		}
	}
	return response
}

// CreateAssignment handles POST /api/v1/assignments: the atomic locker grant.
func (s *Server) CreateAssignment(ctx echo.Context) error {
	var body createAssignmentBody
	if err := ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidError("body"))
	}

	cmd, err := commands.NewCreateAssignmentCommand(principalFrom(ctx), body.PaymentID, body.LockerID)
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := s.commands.CreateAssignment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: id})
}

// GetAllAssignments handles GET /api/v1/assignments.
func (s *Server) GetAllAssignments(ctx echo.Context) error {
	query, err := queries.NewGetAssignmentsQuery(principalFrom(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	results, err := s.queries.GetAssignments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAssignmentResponses(results))
}

// GetUserAssignments handles GET /api/v1/assignments/user/:id.
func (s *Server) GetUserAssignments(ctx echo.Context) error {
	userID, err := pathID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetUserAssignmentsQuery(principalFrom(ctx), userID)
	if err != nil {
		return writeError(ctx, err)
	}

	results, err := s.queries.GetUserAssignments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAssignmentResponses(results))
}

// GetAssignmentCertificate handles GET /api/v1/assignments/:id/certificate,
// rendering the constancia as plain text.
func (s *Server) GetAssignmentCertificate(ctx echo.Context) error {
	assignmentID, err := pathID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetAssignmentCertificateQuery(principalFrom(ctx), assignmentID)
	if err != nil {
		return writeError(ctx, err)
	}

	cert, err := s.queries.GetAssignmentCertificate.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	body := fmt.Sprintf(
		"CONSTANCIA DE ASIGNACION DE CASILLERO\n\n"+
			"Alumno: %s\nBoleta: %s\nCasillero: %d\nUbicacion: %s\nFecha de asignacion: %s\n",
		cert.StudentName,
		cert.Boleta,
		cert.LockerNumber,
		cert.LockerLocation,
		cert.AssignedAt.Format("2006-01-02"),
	)
	return ctx.String(http.StatusOK, body)
}
