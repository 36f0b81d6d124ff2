package commands_test

import (
	"testing"

	"lockers/internal/core/application/usecases/commands"
	"lockers/internal/core/domain/model/payment"
	"lockers/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestValidatePaymentCommandHandler_Handle_MarkPaid(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewValidatePaymentCommand(
		coordinatorPrincipal(t, 1), 9, true, payment.Paid, "",
	)
	require.NoError(t, err)

	paymentEntity, err := payment.RestorePayment(9, 42, "http://storage.local/payments/xyz.jpg", false, payment.Unpaid, "")
	require.NoError(t, err)

	mockRepo := new(MockPaymentRepository)
	mockUoW := new(MockPaymentUoW)
	mockFactory := new(MockPaymentUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("PaymentRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, uint64(9)).Return(paymentEntity, nil).Once(),
		mockRepo.On("Update", ctx, paymentEntity).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewValidatePaymentCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.True(t, paymentEntity.IsApprovedForAssignment())
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestValidatePaymentCommandHandler_Handle_RejectWithReason(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewValidatePaymentCommand(
		coordinatorPrincipal(t, 1), 9, true, payment.Unpaid, "voucher is illegible",
	)
	require.NoError(t, err)

	paymentEntity, err := payment.RestorePayment(9, 42, "http://storage.local/payments/xyz.jpg", false, payment.Unpaid, "")
	require.NoError(t, err)

	mockRepo := new(MockPaymentRepository)
	mockUoW := new(MockPaymentUoW)
	mockFactory := new(MockPaymentUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("PaymentRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, uint64(9)).Return(paymentEntity, nil).Once(),
		mockRepo.On("Update", ctx, paymentEntity).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewValidatePaymentCommandHandler(mockFactory)

	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, paymentEntity.IsApprovedForAssignment())
	assert.Equal(t, "voucher is illegible", paymentEntity.RejectionReason())
}

func TestValidatePaymentCommandHandler_Handle_StudentForbidden(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewValidatePaymentCommand(
		studentPrincipal(t, 7), 9, true, payment.Paid, "",
	)
	require.NoError(t, err)

	mockFactory := new(MockPaymentUoWFactory)
	handler := commands.NewValidatePaymentCommandHandler(mockFactory)

	err = handler.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrForbidden)
	mockFactory.AssertNotCalled(t, "Create")
}
