package payment

import "tourism/internal/domain"

type RecordTransactionRequest struct {
	Reference string  `json:"reference" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Status    string  `json:"status" binding:"required,oneof=pending completed failed"`
}

type RefundRequest struct {
	Reference string  `json:"reference" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
}

// TransactionResult is the outcome of one recordTransaction call. Duplicate
// reports that the reference had been seen before and the stored entry was
// returned untouched.
type TransactionResult struct {
	Transaction   *domain.BookingTransaction `json:"transaction"`
	Duplicate     bool                       `json:"duplicate"`
	PaymentStatus domain.PaymentStatus       `json:"payment_status"`
	ChargedTotal  float64                    `json:"charged_total"`
}

type RefundOutcome struct {
	Transaction   *domain.BookingTransaction `json:"transaction"`
	Duplicate     bool                       `json:"duplicate"`
	Refunded      bool                       `json:"refunded"`
	RefundedTotal float64                    `json:"refunded_total"`
}
