package repository

import (
	"context"
	"time"

	"tourism/internal/domain"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

type paymentModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	BookingID int64     `gorm:"column:booking_id"`
	Amount    float64   `gorm:"column:amount"`
	Status    string    `gorm:"column:transaction_status"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (paymentModel) TableName() string { return "payments" }

func toDomainPayment(m paymentModel) *domain.Payment {
	return &domain.Payment{
		ID:        m.ID,
		BookingID: m.BookingID,
		Amount:    m.Amount,
		Status:    domain.TransactionStatus(m.Status),
		CreatedAt: m.CreatedAt,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	m := paymentModel{
		BookingID: p.BookingID,
		Amount:    p.Amount,
		Status:    string(p.Status),
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return mapError(tx.Error)
	}
	*p = *toDomainPayment(m)
	return nil
}

func (r *PaymentRepository) ListByBooking(ctx context.Context, bookingID int64) ([]domain.Payment, error) {
	var rows []paymentModel
	tx := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at, id").
		Find(&rows)
	if tx.Error != nil {
		return nil, mapError(tx.Error)
	}
	out := make([]domain.Payment, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainPayment(m))
	}
	return out, nil
}
