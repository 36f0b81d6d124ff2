// Package http is the inbound REST adapter: thin echo handlers that parse a
// request, build a command or query, and map the outcome onto a status code.
// All business rules, including who may do what, live in the use cases.
package http

import (
	"lockers/internal/core/application/usecases/commands"
	"lockers/internal/core/application/usecases/queries"
	"lockers/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// CommandHandlers bundles every command handler the server dispatches to.
type CommandHandlers struct {
	RegisterUser          commands.RegisterUserCommandHandler
	CreateRequest         commands.CreateRequestCommandHandler
	DecideRequest         commands.DecideRequestCommandHandler
	DeleteRequest         commands.DeleteRequestCommandHandler
	AttachDocument        commands.AttachDocumentCommandHandler
	SubmitPaymentProof    commands.SubmitPaymentProofCommandHandler
	ValidatePayment       commands.ValidatePaymentCommandHandler
	CreateLocker          commands.CreateLockerCommandHandler
	SetLockerAvailability commands.SetLockerAvailabilityCommandHandler
	DeleteLocker          commands.DeleteLockerCommandHandler
	CreateAssignment      commands.CreateAssignmentCommandHandler
}

// QueryHandlers bundles every query handler the server dispatches to.
type QueryHandlers struct {
	AuthenticateUser         queries.AuthenticateUserQueryHandler
	GetAllRequests           queries.GetAllRequestsQueryHandler
	GetUserRequest           queries.GetUserRequestQueryHandler
	GetRequestDocuments      queries.GetRequestDocumentsQueryHandler
	GetUserDocuments         queries.GetUserDocumentsQueryHandler
	GetLatestPayment         queries.GetLatestPaymentQueryHandler
	GetPaymentHistory        queries.GetPaymentHistoryQueryHandler
	GetLockers               queries.GetLockersQueryHandler
	GetAssignments           queries.GetAssignmentsQueryHandler
	GetUserAssignments       queries.GetUserAssignmentsQueryHandler
	GetAssignmentCertificate queries.GetAssignmentCertificateQueryHandler
	GetProcessStatus         queries.GetProcessStatusQueryHandler
}

// Server wires the REST surface to the application layer.
type Server struct {
	tokens   ports.TokenService
	commands CommandHandlers
	queries  QueryHandlers
}

// NewServer creates a server dispatching to the given handlers.
func NewServer(tokens ports.TokenService, commandHandlers CommandHandlers, queryHandlers QueryHandlers) *Server {
	return &Server{
		tokens:   tokens,
		commands: commandHandlers,
		queries:  queryHandlers,
	}
}

// RegisterRoutes mounts the /api/v1 surface. Registration and login are the
// only routes outside the auth middleware.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/users", s.RegisterUser)
	api.POST("/users/login", s.Login)

	authed := api.Group("", AuthMiddleware(s.tokens))

	authed.GET("/users/process-status", s.GetOwnProcessStatus)
	authed.GET("/users/:id/process-status", s.GetUserProcessStatus)

	authed.POST("/requests", s.CreateRequest)
	authed.GET("/requests", s.GetAllRequests)
	authed.GET("/requests/user/:id", s.GetUserRequest)
	authed.PUT("/requests/:id/status", s.DecideRequest)
	authed.DELETE("/requests/:id", s.DeleteRequest)

	authed.POST("/documents", s.AttachDocument)
	authed.GET("/documents/request/:id", s.GetRequestDocuments)
	authed.GET("/documents/user/:id", s.GetUserDocuments)

	authed.POST("/payments", s.SubmitPaymentProof)
	authed.PUT("/payments/:id/validate", s.ValidatePayment)
	authed.GET("/payments/request/:id", s.GetLatestPayment)
	authed.GET("/payments/request/:id/history", s.GetPaymentHistory)

	authed.POST("/lockers", s.CreateLocker)
	authed.GET("/lockers", s.GetAllLockers)
	authed.GET("/lockers/available", s.GetAvailableLockers)
	authed.PUT("/lockers/:id/availability", s.SetLockerAvailability)
	authed.DELETE("/lockers/:id", s.DeleteLocker)

	authed.POST("/assignments", s.CreateAssignment)
	authed.GET("/assignments", s.GetAllAssignments)
	authed.GET("/assignments/user/:id", s.GetUserAssignments)
	authed.GET("/assignments/:id/certificate", s.GetAssignmentCertificate)
}
