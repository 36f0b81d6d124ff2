package commands_test

import (
	"testing"

	"lockers/internal/core/application/usecases/commands"
	"lockers/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubmitPaymentProofCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewSubmitPaymentProofCommand(
		studentPrincipal(t, 7), 42, []byte("voucher"), "image/jpeg",
	)
	require.NoError(t, err)

	requestEntity := approvedRequest(t, 42, 7)

	mockRequestRepo := new(MockRequestRepository)
	mockPaymentRepo := new(MockPaymentRepository)
	mockStorage := new(MockObjectStorage)
	mockUoW := new(MockPaymentUoW)
	mockFactory := new(MockPaymentUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("RequestRepository").Return(mockRequestRepo).Once(),
		mockRequestRepo.On("Get", ctx, uint64(42)).Return(requestEntity, nil).Once(),
		mockStorage.On("Put", ctx, "payments", []byte("voucher"), "image/jpeg").
			Return("http://storage.local/payments/xyz.jpg", nil).Once(),
		mockUoW.On("PaymentRepository").Return(mockPaymentRepo).Once(),
		mockPaymentRepo.On("Add", ctx, mock.AnythingOfType("*payment.Payment")).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewSubmitPaymentProofCommandHandler(mockFactory, mockStorage)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockUoW.AssertExpectations(t)
	mockPaymentRepo.AssertExpectations(t)
}

func TestSubmitPaymentProofCommandHandler_Handle_RequestNotApproved(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSubmitPaymentProofCommand(
		studentPrincipal(t, 7), 42, []byte("voucher"), "image/jpeg",
	)
	require.NoError(t, err)

	requestEntity := pendingRequest(t, 42, 7)

	mockRequestRepo := new(MockRequestRepository)
	mockStorage := new(MockObjectStorage)
	mockUoW := new(MockPaymentUoW)
	mockFactory := new(MockPaymentUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("RequestRepository").Return(mockRequestRepo).Once(),
		mockRequestRepo.On("Get", ctx, uint64(42)).Return(requestEntity, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewSubmitPaymentProofCommandHandler(mockFactory, mockStorage)

	_, err = handler.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrPreconditionFailed)
	mockStorage.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitPaymentProofCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSubmitPaymentProofCommand(
		studentPrincipal(t, 8), 42, []byte("voucher"), "image/jpeg",
	)
	require.NoError(t, err)

	requestEntity := approvedRequest(t, 42, 7)

	mockRequestRepo := new(MockRequestRepository)
	mockStorage := new(MockObjectStorage)
	mockUoW := new(MockPaymentUoW)
	mockFactory := new(MockPaymentUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("RequestRepository").Return(mockRequestRepo).Once(),
		mockRequestRepo.On("Get", ctx, uint64(42)).Return(requestEntity, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewSubmitPaymentProofCommandHandler(mockFactory, mockStorage)

	_, err = handler.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrForbidden)
}

func TestSubmitPaymentProofCommandHandler_Handle_CoordinatorIsNotOwner(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSubmitPaymentProofCommand(
		coordinatorPrincipal(t, 3), 42, []byte("voucher"), "image/jpeg",
	)
	require.NoError(t, err)

	requestEntity := approvedRequest(t, 42, 7)

	mockRequestRepo := new(MockRequestRepository)
	mockStorage := new(MockObjectStorage)
	mockUoW := new(MockPaymentUoW)
	mockFactory := new(MockPaymentUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("RequestRepository").Return(mockRequestRepo).Once(),
		mockRequestRepo.On("Get", ctx, uint64(42)).Return(requestEntity, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewSubmitPaymentProofCommandHandler(mockFactory, mockStorage)

	_, err = handler.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrForbidden)
	mockStorage.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
