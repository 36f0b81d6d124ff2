package commands_test

import (
	"context"
	"testing"

	"lockers/internal/core/application/usecases/commands"
	"lockers/internal/core/domain/model/assignment"
	"lockers/internal/core/domain/model/document"
	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/domain/model/locker"
	"lockers/internal/core/domain/model/payment"
	"lockers/internal/core/domain/model/request"
	"lockers/internal/core/domain/model/user"
	"lockers/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Shared mock implementations for the command handler tests.

type MockRequestRepository struct{ mock.Mock }

func (m *MockRequestRepository) Add(ctx context.Context, aggregate *request.Request) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockRequestRepository) Update(ctx context.Context, aggregate *request.Request) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockRequestRepository) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRequestRepository) Get(ctx context.Context, id uint64) (*request.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*request.Request), args.Error(1)
}

func (m *MockRequestRepository) GetByUser(ctx context.Context, userID uint64) (*request.Request, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*request.Request), args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, aggregate *payment.Payment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPaymentRepository) Update(ctx context.Context, aggregate *payment.Payment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPaymentRepository) Get(ctx context.Context, id uint64) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) GetLatestForRequest(ctx context.Context, requestID uint64) (*payment.Payment, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) CountForRequest(ctx context.Context, requestID uint64) (int64, error) {
	args := m.Called(ctx, requestID)
	return args.Get(0).(int64), args.Error(1)
}

type MockLockerRepository struct{ mock.Mock }

func (m *MockLockerRepository) Add(ctx context.Context, aggregate *locker.Locker) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockLockerRepository) Update(ctx context.Context, aggregate *locker.Locker) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockLockerRepository) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLockerRepository) Get(ctx context.Context, id uint64) (*locker.Locker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*locker.Locker), args.Error(1)
}

func (m *MockLockerRepository) MarkUnavailable(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAssignmentRepository struct{ mock.Mock }

func (m *MockAssignmentRepository) Add(ctx context.Context, aggregate *assignment.Assignment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Get(ctx context.Context, id uint64) (*assignment.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) CountForLocker(ctx context.Context, lockerID uint64) (int64, error) {
	args := m.Called(ctx, lockerID)
	return args.Get(0).(int64), args.Error(1)
}

type MockDocumentRepository struct{ mock.Mock }

func (m *MockDocumentRepository) Add(ctx context.Context, aggregate *document.Document) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDocumentRepository) CountForRequest(ctx context.Context, requestID uint64) (int64, error) {
	args := m.Called(ctx, requestID)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id uint64) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockObjectStorage struct{ mock.Mock }

func (m *MockObjectStorage) Put(
	ctx context.Context, category string, data []byte, contentType string,
) (string, error) {
	args := m.Called(ctx, category, data, contentType)
	return args.String(0), args.Error(1)
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(plain string) (string, error) {
	args := m.Called(plain)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hash, plain string) error {
	args := m.Called(hash, plain)
	return args.Error(0)
}

// txMock carries the shared Begin/Commit/Rollback expectations.
type txMock struct{ mock.Mock }

func (m *txMock) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *txMock) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *txMock) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockRequestUoW struct{ txMock }

func (m *MockRequestUoW) RequestRepository() ports.RequestRepository {
	args := m.Called()
	return args.Get(0).(ports.RequestRepository)
}

type MockRequestUoWFactory struct{ mock.Mock }

func (m *MockRequestUoWFactory) Create() commands.RequestUoW {
	args := m.Called()
	return args.Get(0).(commands.RequestUoW)
}

type MockDocumentUoW struct{ txMock }

func (m *MockDocumentUoW) RequestRepository() ports.RequestRepository {
	args := m.Called()
	return args.Get(0).(ports.RequestRepository)
}

func (m *MockDocumentUoW) DocumentRepository() ports.DocumentRepository {
	args := m.Called()
	return args.Get(0).(ports.DocumentRepository)
}

type MockDocumentUoWFactory struct{ mock.Mock }

func (m *MockDocumentUoWFactory) Create() commands.DocumentUoW {
	args := m.Called()
	return args.Get(0).(commands.DocumentUoW)
}

type MockPaymentUoW struct{ txMock }

func (m *MockPaymentUoW) RequestRepository() ports.RequestRepository {
	args := m.Called()
	return args.Get(0).(ports.RequestRepository)
}

func (m *MockPaymentUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}

type MockPaymentUoWFactory struct{ mock.Mock }

func (m *MockPaymentUoWFactory) Create() commands.PaymentUoW {
	args := m.Called()
	return args.Get(0).(commands.PaymentUoW)
}

type MockLockerUoW struct{ txMock }

func (m *MockLockerUoW) LockerRepository() ports.LockerRepository {
	args := m.Called()
	return args.Get(0).(ports.LockerRepository)
}

type MockLockerUoWFactory struct{ mock.Mock }

func (m *MockLockerUoWFactory) Create() commands.LockerUoW {
	args := m.Called()
	return args.Get(0).(commands.LockerUoW)
}

type MockAllocationUoW struct{ txMock }

func (m *MockAllocationUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}

func (m *MockAllocationUoW) LockerRepository() ports.LockerRepository {
	args := m.Called()
	return args.Get(0).(ports.LockerRepository)
}

func (m *MockAllocationUoW) AssignmentRepository() ports.AssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AssignmentRepository)
}

type MockAllocationUoWFactory struct{ mock.Mock }

func (m *MockAllocationUoWFactory) Create() commands.AllocationUoW {
	args := m.Called()
	return args.Get(0).(commands.AllocationUoW)
}

type MockCleanupUoW struct{ txMock }

func (m *MockCleanupUoW) RequestRepository() ports.RequestRepository {
	args := m.Called()
	return args.Get(0).(ports.RequestRepository)
}

func (m *MockCleanupUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}

func (m *MockCleanupUoW) DocumentRepository() ports.DocumentRepository {
	args := m.Called()
	return args.Get(0).(ports.DocumentRepository)
}

type MockCleanupUoWFactory struct{ mock.Mock }

func (m *MockCleanupUoWFactory) Create() commands.CleanupUoW {
	args := m.Called()
	return args.Get(0).(commands.CleanupUoW)
}

type MockUserUoW struct{ txMock }

func (m *MockUserUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

func studentPrincipal(t *testing.T, userID uint64) kernel.Principal {
	t.Helper()
	principal, err := kernel.NewPrincipal(userID, kernel.Student)
	require.NoError(t, err)
	return principal
}

func coordinatorPrincipal(t *testing.T, userID uint64) kernel.Principal {
	t.Helper()
	principal, err := kernel.NewPrincipal(userID, kernel.Coordinator)
	require.NoError(t, err)
	return principal
}

func approvedRequest(t *testing.T, id, userID uint64) *request.Request {
	t.Helper()
	entity, err := request.RestoreRequest(
		id, userID, "2021630123", "Ana Torres", "5", "ana@alumno.ipn.mx", "5512345678",
		request.Approved, "",
	)
	require.NoError(t, err)
	return entity
}

func pendingRequest(t *testing.T, id, userID uint64) *request.Request {
	t.Helper()
	entity, err := request.RestoreRequest(
		id, userID, "2021630123", "Ana Torres", "5", "ana@alumno.ipn.mx", "5512345678",
		request.Pending, "",
	)
	require.NoError(t, err)
	return entity
}
