package payment

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"tourism/internal/domain"
	"tourism/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockLedger struct{ mock.Mock }

func (m *mockLedger) Append(ctx context.Context, t *domain.BookingTransaction) (bool, error) {
	args := m.Called(ctx, t)
	return args.Bool(0), args.Error(1)
}

func (m *mockLedger) ListByBooking(ctx context.Context, bookingID int64) ([]domain.BookingTransaction, error) {
	args := m.Called(ctx, bookingID)
	if v := args.Get(0); v != nil {
		return v.([]domain.BookingTransaction), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockLedger) ReconcileCharges(ctx context.Context, bookingID int64) (repository.ChargeResult, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).(repository.ChargeResult), args.Error(1)
}

func (m *mockLedger) ReconcileRefunds(ctx context.Context, bookingID int64) (repository.RefundResult, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).(repository.RefundResult), args.Error(1)
}

type mockPaymentRepo struct{ mock.Mock }

func (m *mockPaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPaymentRepo) ListByBooking(ctx context.Context, bookingID int64) ([]domain.Payment, error) {
	args := m.Called(ctx, bookingID)
	if v := args.Get(0); v != nil {
		return v.([]domain.Payment), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockBookingReader struct{ mock.Mock }

func (m *mockBookingReader) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func unpaidBooking() *domain.Booking {
	return &domain.Booking{ID: 42, UserID: 7, Status: domain.BookingPending, PaymentStatus: domain.PaymentUnpaid, TotalCost: 600}
}

func TestRecordTransaction_CompletedChargeFlipsPaid(t *testing.T) {
	ledger := &mockLedger{}
	payments := &mockPaymentRepo{}
	bookings := &mockBookingReader{}
	svc := NewService(ledger, payments, bookings, nil, nil)

	bookings.On("GetByID", mock.Anything, int64(42)).Return(unpaidBooking(), nil)
	ledger.On("Append", mock.Anything, mock.AnythingOfType("*domain.BookingTransaction")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.BookingTransaction).ID = 1
		}).
		Return(true, nil)
	payments.On("Create", mock.Anything, mock.AnythingOfType("*domain.Payment")).Return(nil)
	ledger.On("ReconcileCharges", mock.Anything, int64(42)).
		Return(repository.ChargeResult{Paid: true, ChargedTotal: 600, TotalCost: 600}, nil)

	res, err := svc.RecordTransaction(context.Background(), 7, "client", 42, RecordTransactionRequest{
		Reference: "tx-1",
		Amount:    600,
		Status:    "completed",
	})
	require.NoError(t, err)

	assert.False(t, res.Duplicate)
	assert.Equal(t, domain.PaymentPaid, res.PaymentStatus)
	assert.Equal(t, 600.0, res.ChargedTotal)
	assert.Equal(t, domain.TransactionCharge, res.Transaction.Kind)
	ledger.AssertExpectations(t)
}

func TestRecordTransaction_DuplicateReferenceNotDoubleCounted(t *testing.T) {
	ledger := &mockLedger{}
	payments := &mockPaymentRepo{}
	bookings := &mockBookingReader{}
	svc := NewService(ledger, payments, bookings, nil, nil)

	paid := unpaidBooking()
	paid.PaymentStatus = domain.PaymentPaid

	bookings.On("GetByID", mock.Anything, int64(42)).Return(paid, nil)
	ledger.On("Append", mock.Anything, mock.AnythingOfType("*domain.BookingTransaction")).
		Run(func(args mock.Arguments) {
			stored := args.Get(1).(*domain.BookingTransaction)
			stored.ID = 1
			stored.Amount = 600
		}).
		Return(false, nil)
	ledger.On("ReconcileCharges", mock.Anything, int64(42)).
		Return(repository.ChargeResult{Paid: true, ChargedTotal: 600, TotalCost: 600}, nil)

	res, err := svc.RecordTransaction(context.Background(), 7, "client", 42, RecordTransactionRequest{
		Reference: "tx-1",
		Amount:    600,
		Status:    "completed",
	})
	require.NoError(t, err)

	assert.True(t, res.Duplicate)
	assert.Equal(t, 600.0, res.ChargedTotal)
	payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRecordTransaction_PendingDoesNotReconcile(t *testing.T) {
	ledger := &mockLedger{}
	payments := &mockPaymentRepo{}
	bookings := &mockBookingReader{}
	svc := NewService(ledger, payments, bookings, nil, nil)

	bookings.On("GetByID", mock.Anything, int64(42)).Return(unpaidBooking(), nil)
	ledger.On("Append", mock.Anything, mock.AnythingOfType("*domain.BookingTransaction")).Return(true, nil)
	payments.On("Create", mock.Anything, mock.AnythingOfType("*domain.Payment")).Return(nil)

	res, err := svc.RecordTransaction(context.Background(), 7, "client", 42, RecordTransactionRequest{
		Reference: "tx-2",
		Amount:    100,
		Status:    "pending",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentUnpaid, res.PaymentStatus)
	ledger.AssertNotCalled(t, "ReconcileCharges", mock.Anything, mock.Anything)
}

func TestRecordTransaction_OverpaymentWarnsOnly(t *testing.T) {
	ledger := &mockLedger{}
	payments := &mockPaymentRepo{}
	bookings := &mockBookingReader{}

	var logged []string
	loggerf := func(format string, args ...interface{}) {
		logged = append(logged, fmt.Sprintf(format, args...))
	}
	svc := NewService(ledger, payments, bookings, nil, loggerf)

	bookings.On("GetByID", mock.Anything, int64(42)).Return(unpaidBooking(), nil)
	ledger.On("Append", mock.Anything, mock.AnythingOfType("*domain.BookingTransaction")).Return(true, nil)
	payments.On("Create", mock.Anything, mock.AnythingOfType("*domain.Payment")).Return(nil)
	ledger.On("ReconcileCharges", mock.Anything, int64(42)).
		Return(repository.ChargeResult{Paid: true, ChargedTotal: 800, TotalCost: 600}, nil)

	res, err := svc.RecordTransaction(context.Background(), 7, "client", 42, RecordTransactionRequest{
		Reference: "tx-3",
		Amount:    800,
		Status:    "completed",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentPaid, res.PaymentStatus)
	assert.True(t, strings.Contains(strings.Join(logged, "\n"), "overpayment"))
}

func TestRecordTransaction_NonOwnerRejected(t *testing.T) {
	ledger := &mockLedger{}
	payments := &mockPaymentRepo{}
	bookings := &mockBookingReader{}
	svc := NewService(ledger, payments, bookings, nil, nil)

	bookings.On("GetByID", mock.Anything, int64(42)).Return(unpaidBooking(), nil)

	_, err := svc.RecordTransaction(context.Background(), 99, "client", 42, RecordTransactionRequest{
		Reference: "tx-1",
		Amount:    600,
		Status:    "completed",
	})
	assert.ErrorIs(t, err, ErrForbidden)
	ledger.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestListTransactions_AdminMayReadAnyLedger(t *testing.T) {
	ledger := &mockLedger{}
	payments := &mockPaymentRepo{}
	bookings := &mockBookingReader{}
	svc := NewService(ledger, payments, bookings, nil, nil)

	bookings.On("GetByID", mock.Anything, int64(42)).Return(unpaidBooking(), nil)
	ledger.On("ListByBooking", mock.Anything, int64(42)).
		Return([]domain.BookingTransaction{{ID: 1, BookingID: 42}}, nil)

	items, err := svc.ListTransactions(context.Background(), 99, string(domain.RoleAdmin), 42)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestRefund_UnpaidRejected(t *testing.T) {
	ledger := &mockLedger{}
	payments := &mockPaymentRepo{}
	bookings := &mockBookingReader{}
	svc := NewService(ledger, payments, bookings, nil, nil)

	bookings.On("GetByID", mock.Anything, int64(42)).Return(unpaidBooking(), nil)

	_, err := svc.Refund(context.Background(), 7, "client", 42, RefundRequest{Reference: "rf-1", Amount: 600})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	ledger.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestRefund_FullRefundFlipsStatus(t *testing.T) {
	ledger := &mockLedger{}
	payments := &mockPaymentRepo{}
	bookings := &mockBookingReader{}
	svc := NewService(ledger, payments, bookings, nil, nil)

	paid := unpaidBooking()
	paid.PaymentStatus = domain.PaymentPaid
	paid.Status = domain.BookingConfirmed

	bookings.On("GetByID", mock.Anything, int64(42)).Return(paid, nil)
	ledger.On("Append", mock.Anything, mock.AnythingOfType("*domain.BookingTransaction")).Return(true, nil)
	ledger.On("ReconcileRefunds", mock.Anything, int64(42)).
		Return(repository.RefundResult{Refunded: true, ChargedTotal: 600, RefundedTotal: 600}, nil)

	res, err := svc.Refund(context.Background(), 7, "client", 42, RefundRequest{Reference: "rf-1", Amount: 600})
	require.NoError(t, err)

	assert.True(t, res.Refunded)
	assert.Equal(t, 600.0, res.RefundedTotal)
	assert.Equal(t, domain.TransactionRefund, res.Transaction.Kind)
}
