package repository

import (
	"context"
	"time"

	"tourism/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

type transactionModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Reference string    `gorm:"column:reference;uniqueIndex:idx_tx_booking_reference"`
	BookingID int64     `gorm:"column:booking_id;uniqueIndex:idx_tx_booking_reference"`
	Kind      string    `gorm:"column:kind"`
	Status    string    `gorm:"column:status"`
	Amount    float64   `gorm:"column:amount"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (transactionModel) TableName() string { return "booking_transactions" }

func toDomainTransaction(m transactionModel) *domain.BookingTransaction {
	return &domain.BookingTransaction{
		ID:        m.ID,
		Reference: m.Reference,
		BookingID: m.BookingID,
		Kind:      domain.TransactionKind(m.Kind),
		Status:    domain.TransactionStatus(m.Status),
		Amount:    m.Amount,
		CreatedAt: m.CreatedAt,
	}
}

// Append inserts a ledger entry. Re-sending the same (booking_id, reference)
// pair returns the already-stored entry with created=false instead of
// double-counting; the unique index idx_tx_booking_reference backs this.
func (r *TransactionRepository) Append(ctx context.Context, t *domain.BookingTransaction) (bool, error) {
	m := transactionModel{
		Reference: t.Reference,
		BookingID: t.BookingID,
		Kind:      string(t.Kind),
		Status:    string(t.Status),
		Amount:    t.Amount,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		// Drivers disagree on how a unique violation surfaces (pgconn
		// error code on postgres, untranslated constraint error on
		// sqlite), so any failed insert is checked against the natural
		// key before the error is mapped.
		existing, lookupErr := r.GetByReference(ctx, t.BookingID, t.Reference)
		if lookupErr == nil {
			*t = *existing
			return false, nil
		}
		return false, mapError(tx.Error)
	}
	*t = *toDomainTransaction(m)
	return true, nil
}

func (r *TransactionRepository) GetByReference(ctx context.Context, bookingID int64, reference string) (*domain.BookingTransaction, error) {
	var m transactionModel
	tx := r.db.WithContext(ctx).
		Where("booking_id = ? AND reference = ?", bookingID, reference).
		First(&m)
	if tx.Error != nil {
		return nil, mapError(tx.Error)
	}
	return toDomainTransaction(m), nil
}

func (r *TransactionRepository) ListByBooking(ctx context.Context, bookingID int64) ([]domain.BookingTransaction, error) {
	var rows []transactionModel
	tx := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at, id").
		Find(&rows)
	if tx.Error != nil {
		return nil, mapError(tx.Error)
	}
	out := make([]domain.BookingTransaction, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainTransaction(m))
	}
	return out, nil
}

// ChargeResult reports one reconciliation pass over the charge side of a
// booking's ledger.
type ChargeResult struct {
	Paid         bool
	ChargedTotal float64
	TotalCost    float64
}

// RefundResult reports one reconciliation pass over the refund side.
type RefundResult struct {
	Refunded      bool
	ChargedTotal  float64
	RefundedTotal float64
}

// ReconcileCharges recomputes the completed-charge sum for a booking and
// flips payment_status to paid when the sum covers total_cost. Runs as one
// transaction holding a row lock on the booking so two concurrent callbacks
// cannot both read a stale sum. Idempotent: an already paid booking is left
// as is.
func (r *TransactionRepository) ReconcileCharges(ctx context.Context, bookingID int64) (ChargeResult, error) {
	var res ChargeResult
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var b bookingModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&b, bookingID).Error; err != nil {
			return err
		}

		charged, err := sumCompleted(tx, bookingID, domain.TransactionCharge)
		if err != nil {
			return err
		}

		res.ChargedTotal = charged
		res.TotalCost = b.TotalCost
		res.Paid = b.PaymentStatus == string(domain.PaymentPaid)

		if b.PaymentStatus == string(domain.PaymentUnpaid) && charged >= b.TotalCost {
			if err := tx.Model(&bookingModel{}).Where("id = ?", bookingID).
				Update("payment_status", string(domain.PaymentPaid)).Error; err != nil {
				return err
			}
			res.Paid = true
		}
		return nil
	})
	if err != nil {
		return ChargeResult{}, mapError(err)
	}
	return res, nil
}

// ReconcileRefunds recomputes both ledger sides and flips payment_status to
// refunded once the refunded sum covers the charged sum. A confirmed booking
// moves to the terminal refunded status in the same transaction.
func (r *TransactionRepository) ReconcileRefunds(ctx context.Context, bookingID int64) (RefundResult, error) {
	var res RefundResult
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var b bookingModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&b, bookingID).Error; err != nil {
			return err
		}

		charged, err := sumCompleted(tx, bookingID, domain.TransactionCharge)
		if err != nil {
			return err
		}
		refunded, err := sumCompleted(tx, bookingID, domain.TransactionRefund)
		if err != nil {
			return err
		}

		res.ChargedTotal = charged
		res.RefundedTotal = refunded
		res.Refunded = b.PaymentStatus == string(domain.PaymentRefunded)

		if b.PaymentStatus == string(domain.PaymentPaid) && charged > 0 && refunded >= charged {
			updates := map[string]any{"payment_status": string(domain.PaymentRefunded)}
			if b.Status == string(domain.BookingConfirmed) {
				updates["status"] = string(domain.BookingRefunded)
			}
			if err := tx.Model(&bookingModel{}).Where("id = ?", bookingID).
				Updates(updates).Error; err != nil {
				return err
			}
			res.Refunded = true
		}
		return nil
	})
	if err != nil {
		return RefundResult{}, mapError(err)
	}
	return res, nil
}

func sumCompleted(tx *gorm.DB, bookingID int64, kind domain.TransactionKind) (float64, error) {
	var sum float64
	err := tx.Model(&transactionModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("booking_id = ? AND kind = ? AND status = ?",
			bookingID, string(kind), string(domain.TransactionCompleted)).
		Scan(&sum).Error
	return sum, err
}
