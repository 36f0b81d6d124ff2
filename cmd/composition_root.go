package cmd

import (
	"log/slog"

	httpin "lockers/internal/adapters/in/http"
	"lockers/internal/adapters/out/postgres"
	"lockers/internal/core/application/usecases/commands"
	"lockers/internal/core/application/usecases/queries"
	"lockers/internal/core/ports"
	"lockers/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	storage    ports.ObjectStorage
	tokens     ports.TokenService
	hasher     ports.PasswordHasher
}

func NewCompositionRoot(
	gormDB *gorm.DB,
	storage ports.ObjectStorage,
	tokens ports.TokenService,
	hasher ports.PasswordHasher,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		storage:    storage,
		tokens:     tokens,
		hasher:     hasher,
	}
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f, c.hasher)
}

func (c *CompositionRoot) CreateCreateRequestCommandHandler() commands.CreateRequestCommandHandler {
	var f commands.RequestUoWFactory = FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateDecideRequestCommandHandler() commands.DecideRequestCommandHandler {
	var f commands.RequestUoWFactory = FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDecideRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteRequestCommandHandler() commands.DeleteRequestCommandHandler {
	var f commands.CleanupUoWFactory = FuncCleanupUoWFactory(func() commands.CleanupUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateAttachDocumentCommandHandler() commands.AttachDocumentCommandHandler {
	var f commands.DocumentUoWFactory = FuncDocumentUoWFactory(func() commands.DocumentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAttachDocumentCommandHandler(f, c.storage)
}

func (c *CompositionRoot) CreateSubmitPaymentProofCommandHandler() commands.SubmitPaymentProofCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitPaymentProofCommandHandler(f, c.storage)
}

func (c *CompositionRoot) CreateValidatePaymentCommandHandler() commands.ValidatePaymentCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewValidatePaymentCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateLockerCommandHandler() commands.CreateLockerCommandHandler {
	var f commands.LockerUoWFactory = FuncLockerUoWFactory(func() commands.LockerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateLockerCommandHandler(f)
}

func (c *CompositionRoot) CreateSetLockerAvailabilityCommandHandler() commands.SetLockerAvailabilityCommandHandler {
	var f commands.LockerUoWFactory = FuncLockerUoWFactory(func() commands.LockerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetLockerAvailabilityCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteLockerCommandHandler() commands.DeleteLockerCommandHandler {
	var f commands.AllocationUoWFactory = FuncAllocationUoWFactory(func() commands.AllocationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteLockerCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateAssignmentCommandHandler() commands.CreateAssignmentCommandHandler {
	var f commands.AllocationUoWFactory = FuncAllocationUoWFactory(func() commands.AllocationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateAssignmentCommandHandler(f)
}

func (c *CompositionRoot) CreateAuthenticateUserQueryHandler() queries.AuthenticateUserQueryHandler {
	return queries.NewAuthenticateUserQueryHandler(c.gormDB, c.hasher)
}

func (c *CompositionRoot) CreateGetAvailabilityViolationsQueryHandler() queries.GetAvailabilityViolationsQueryHandler {
	return queries.NewGetAvailabilityViolationsQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the REST adapter with every handler wired in.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	commandHandlers := httpin.CommandHandlers{
		RegisterUser:          c.CreateRegisterUserCommandHandler(),
		CreateRequest:         c.CreateCreateRequestCommandHandler(),
		DecideRequest:         c.CreateDecideRequestCommandHandler(),
		DeleteRequest:         c.CreateDeleteRequestCommandHandler(),
		AttachDocument:        c.CreateAttachDocumentCommandHandler(),
		SubmitPaymentProof:    c.CreateSubmitPaymentProofCommandHandler(),
		ValidatePayment:       c.CreateValidatePaymentCommandHandler(),
		CreateLocker:          c.CreateCreateLockerCommandHandler(),
		SetLockerAvailability: c.CreateSetLockerAvailabilityCommandHandler(),
		DeleteLocker:          c.CreateDeleteLockerCommandHandler(),
		CreateAssignment:      c.CreateCreateAssignmentCommandHandler(),
	}

	queryHandlers := httpin.QueryHandlers{
		AuthenticateUser:         c.CreateAuthenticateUserQueryHandler(),
		GetAllRequests:           queries.NewGetAllRequestsQueryHandler(c.gormDB),
		GetUserRequest:           queries.NewGetUserRequestQueryHandler(c.gormDB),
		GetRequestDocuments:      queries.NewGetRequestDocumentsQueryHandler(c.gormDB),
		GetUserDocuments:         queries.NewGetUserDocumentsQueryHandler(c.gormDB),
		GetLatestPayment:         queries.NewGetLatestPaymentQueryHandler(c.gormDB),
		GetPaymentHistory:        queries.NewGetPaymentHistoryQueryHandler(c.gormDB),
		GetLockers:               queries.NewGetLockersQueryHandler(c.gormDB),
		GetAssignments:           queries.NewGetAssignmentsQueryHandler(c.gormDB),
		GetUserAssignments:       queries.NewGetUserAssignmentsQueryHandler(c.gormDB),
		GetAssignmentCertificate: queries.NewGetAssignmentCertificateQueryHandler(c.gormDB),
		GetProcessStatus:         queries.NewGetProcessStatusQueryHandler(c.gormDB),
	}

	return httpin.NewServer(c.tokens, commandHandlers, queryHandlers)
}

// CreateJobManager assembles the background job scheduler.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetAvailabilityViolationsQueryHandler(), logger)
}

type FuncRequestUoWFactory func() commands.RequestUoW

func (f FuncRequestUoWFactory) Create() commands.RequestUoW {
	return f()
}

type FuncDocumentUoWFactory func() commands.DocumentUoW

func (f FuncDocumentUoWFactory) Create() commands.DocumentUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncLockerUoWFactory func() commands.LockerUoW

func (f FuncLockerUoWFactory) Create() commands.LockerUoW {
	return f()
}

type FuncAllocationUoWFactory func() commands.AllocationUoW

func (f FuncAllocationUoWFactory) Create() commands.AllocationUoW {
	return f()
}

type FuncCleanupUoWFactory func() commands.CleanupUoW

func (f FuncCleanupUoWFactory) Create() commands.CleanupUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
