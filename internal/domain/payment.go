package domain

import "time"

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
)

// Payment is the coarse per-attempt record; many payments may reference one
// booking (retries). The ledger of record for reconciliation is
// BookingTransaction.
type Payment struct {
	ID        int64             `json:"id"`
	BookingID int64             `json:"booking_id" validate:"required"`
	Amount    float64           `json:"amount" validate:"required,gt=0"`
	Status    TransactionStatus `json:"transaction_status"`
	CreatedAt time.Time         `json:"created_at"`
}

type TransactionKind string

const (
	// TransactionCharge credits the booking; TransactionRefund returns money
	// to the payer. Both carry positive amounts, the kind carries the sign.
	TransactionCharge TransactionKind = "charge"
	TransactionRefund TransactionKind = "refund"
)

// BookingTransaction is an immutable ledger entry for one monetary event.
// Reference is the client-supplied idempotency key, unique per booking.
type BookingTransaction struct {
	ID        int64             `json:"id"`
	Reference string            `json:"reference" validate:"required"`
	BookingID int64             `json:"booking_id" validate:"required"`
	Kind      TransactionKind   `json:"kind"`
	Status    TransactionStatus `json:"status"`
	Amount    float64           `json:"amount" validate:"required,gt=0"`
	CreatedAt time.Time         `json:"created_at"`
}
