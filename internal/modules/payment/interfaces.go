package payment

import (
	"context"

	"tourism/internal/domain"
	"tourism/internal/repository"
)

type transactionLedger interface {
	Append(ctx context.Context, t *domain.BookingTransaction) (bool, error)
	ListByBooking(ctx context.Context, bookingID int64) ([]domain.BookingTransaction, error)
	ReconcileCharges(ctx context.Context, bookingID int64) (repository.ChargeResult, error)
	ReconcileRefunds(ctx context.Context, bookingID int64) (repository.RefundResult, error)
}

type paymentRepo interface {
	Create(ctx context.Context, p *domain.Payment) error
	ListByBooking(ctx context.Context, bookingID int64) ([]domain.Payment, error)
}

type bookingReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

type auditRecorder interface {
	Record(ctx context.Context, rec domain.AuditRecord) error
}
