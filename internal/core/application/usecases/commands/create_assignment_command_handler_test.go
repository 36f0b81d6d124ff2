package commands_test

import (
	"testing"

	"lockers/internal/core/application/usecases/commands"
	"lockers/internal/core/domain/model/locker"
	"lockers/internal/core/domain/model/payment"
	"lockers/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validatedPayment(t *testing.T, id, requestID uint64) *payment.Payment {
	t.Helper()
	entity, err := payment.RestorePayment(
		id, requestID, "http://storage.local/payments/xyz.jpg", true, payment.Paid, "",
	)
	require.NoError(t, err)
	return entity
}

func TestCreateAssignmentCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewCreateAssignmentCommand(coordinatorPrincipal(t, 1), 9, 3)
	require.NoError(t, err)

	paymentEntity := validatedPayment(t, 9, 42)
	lockerEntity, err := locker.RestoreLocker(3, 103, "Edificio 4, planta baja", true)
	require.NoError(t, err)

	mockPaymentRepo := new(MockPaymentRepository)
	mockLockerRepo := new(MockLockerRepository)
	mockAssignmentRepo := new(MockAssignmentRepository)
	mockUoW := new(MockAllocationUoW)
	mockFactory := new(MockAllocationUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("PaymentRepository").Return(mockPaymentRepo).Once(),
		mockPaymentRepo.On("Get", ctx, uint64(9)).Return(paymentEntity, nil).Once(),
		mockUoW.On("LockerRepository").Return(mockLockerRepo).Once(),
		mockLockerRepo.On("Get", ctx, uint64(3)).Return(lockerEntity, nil).Once(),
		mockLockerRepo.On("MarkUnavailable", ctx, uint64(3)).Return(nil).Once(),
		mockUoW.On("AssignmentRepository").Return(mockAssignmentRepo).Once(),
		mockAssignmentRepo.On("Add", ctx, mock.AnythingOfType("*assignment.Assignment")).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateAssignmentCommandHandler(mockFactory)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.False(t, lockerEntity.Available())
	mockUoW.AssertExpectations(t)
	mockLockerRepo.AssertExpectations(t)
	mockAssignmentRepo.AssertExpectations(t)
}

func TestCreateAssignmentCommandHandler_Handle_PaymentNotValidated(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateAssignmentCommand(coordinatorPrincipal(t, 1), 9, 3)
	require.NoError(t, err)

	paymentEntity, err := payment.RestorePayment(
		9, 42, "http://storage.local/payments/xyz.jpg", false, payment.Unpaid, "",
	)
	require.NoError(t, err)
	lockerEntity, err := locker.RestoreLocker(3, 103, "Edificio 4, planta baja", true)
	require.NoError(t, err)

	mockPaymentRepo := new(MockPaymentRepository)
	mockLockerRepo := new(MockLockerRepository)
	mockUoW := new(MockAllocationUoW)
	mockFactory := new(MockAllocationUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("PaymentRepository").Return(mockPaymentRepo).Once(),
		mockPaymentRepo.On("Get", ctx, uint64(9)).Return(paymentEntity, nil).Once(),
		mockUoW.On("LockerRepository").Return(mockLockerRepo).Once(),
		mockLockerRepo.On("Get", ctx, uint64(3)).Return(lockerEntity, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateAssignmentCommandHandler(mockFactory)

	_, err = handler.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrPreconditionFailed)
	mockLockerRepo.AssertNotCalled(t, "MarkUnavailable", ctx, uint64(3))
	mockUoW.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateAssignmentCommandHandler_Handle_LockerTaken(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateAssignmentCommand(coordinatorPrincipal(t, 1), 9, 3)
	require.NoError(t, err)

	paymentEntity := validatedPayment(t, 9, 42)
	lockerEntity, err := locker.RestoreLocker(3, 103, "Edificio 4, planta baja", false)
	require.NoError(t, err)

	mockPaymentRepo := new(MockPaymentRepository)
	mockLockerRepo := new(MockLockerRepository)
	mockUoW := new(MockAllocationUoW)
	mockFactory := new(MockAllocationUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("PaymentRepository").Return(mockPaymentRepo).Once(),
		mockPaymentRepo.On("Get", ctx, uint64(9)).Return(paymentEntity, nil).Once(),
		mockUoW.On("LockerRepository").Return(mockLockerRepo).Once(),
		mockLockerRepo.On("Get", ctx, uint64(3)).Return(lockerEntity, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateAssignmentCommandHandler(mockFactory)

	_, err = handler.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrPreconditionFailed)
}

func TestCreateAssignmentCommandHandler_Handle_ConcurrentGrantLoses(t *testing.T) {
	// The conditional flip reports a conflict when another transaction
	// took the locker between the read and the update.
	ctx := t.Context()
	cmd, err := commands.NewCreateAssignmentCommand(coordinatorPrincipal(t, 1), 9, 3)
	require.NoError(t, err)

	paymentEntity := validatedPayment(t, 9, 42)
	lockerEntity, err := locker.RestoreLocker(3, 103, "Edificio 4, planta baja", true)
	require.NoError(t, err)

	conflictErr := errs.NewConflictError("lockerID", uint64(3))

	mockPaymentRepo := new(MockPaymentRepository)
	mockLockerRepo := new(MockLockerRepository)
	mockAssignmentRepo := new(MockAssignmentRepository)
	mockUoW := new(MockAllocationUoW)
	mockFactory := new(MockAllocationUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("PaymentRepository").Return(mockPaymentRepo).Once(),
		mockPaymentRepo.On("Get", ctx, uint64(9)).Return(paymentEntity, nil).Once(),
		mockUoW.On("LockerRepository").Return(mockLockerRepo).Once(),
		mockLockerRepo.On("Get", ctx, uint64(3)).Return(lockerEntity, nil).Once(),
		mockLockerRepo.On("MarkUnavailable", ctx, uint64(3)).Return(conflictErr).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateAssignmentCommandHandler(mockFactory)

	_, err = handler.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrConflict)
	mockAssignmentRepo.AssertNotCalled(t, "Add", ctx, mock.Anything)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateAssignmentCommandHandler_Handle_StudentForbidden(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateAssignmentCommand(studentPrincipal(t, 7), 9, 3)
	require.NoError(t, err)

	mockFactory := new(MockAllocationUoWFactory)
	handler := commands.NewCreateAssignmentCommandHandler(mockFactory)

	_, err = handler.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrForbidden)
	mockFactory.AssertNotCalled(t, "Create")
}
