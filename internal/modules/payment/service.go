package payment

import (
	"context"
	"fmt"

	"tourism/internal/domain"
)

type Service struct {
	ledger   transactionLedger
	payments paymentRepo
	bookings bookingReader
	audits   auditRecorder
	loggerf  func(format string, args ...interface{})
}

func NewService(ledger transactionLedger, payments paymentRepo, bookings bookingReader, audits auditRecorder, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{
		ledger:   ledger,
		payments: payments,
		bookings: bookings,
		audits:   audits,
		loggerf:  loggerf,
	}
}

// loadOwned fetches the booking and checks the actor may touch its ledger.
// Only the booking's owner and admins pass.
func (s *Service) loadOwned(ctx context.Context, bookingID, actorID int64, actorRole string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != actorID && actorRole != string(domain.RoleAdmin) {
		return nil, ErrForbidden
	}
	return b, nil
}

// RecordTransaction appends a charge to the booking's ledger and reconciles
// payment_status from the completed-charge sum. Re-sending the same reference
// returns the stored entry without double-counting. An overpaying ledger is
// accepted and logged, never rejected.
func (s *Service) RecordTransaction(ctx context.Context, actorID int64, actorRole string, bookingID int64, req RecordTransactionRequest) (*TransactionResult, error) {
	status := domain.TransactionStatus(req.Status)
	switch status {
	case domain.TransactionPending, domain.TransactionCompleted, domain.TransactionFailed:
	default:
		return nil, fmt.Errorf("%w: unknown transaction status %q", domain.ErrValidation, req.Status)
	}

	b, err := s.loadOwned(ctx, bookingID, actorID, actorRole)
	if err != nil {
		return nil, err
	}

	t := &domain.BookingTransaction{
		Reference: req.Reference,
		BookingID: b.ID,
		Kind:      domain.TransactionCharge,
		Status:    status,
		Amount:    req.Amount,
	}
	created, err := s.ledger.Append(ctx, t)
	if err != nil {
		return nil, err
	}
	if !created {
		s.loggerf("level=info msg=duplicate transaction reference booking_id=%d reference=%s", b.ID, req.Reference)
	}

	if created {
		mirror := &domain.Payment{BookingID: b.ID, Amount: t.Amount, Status: t.Status}
		if err := s.payments.Create(ctx, mirror); err != nil {
			s.loggerf("level=error msg=payment mirror write failed booking_id=%d err=%v", b.ID, err)
		}
	}

	res := &TransactionResult{
		Transaction:   t,
		Duplicate:     !created,
		PaymentStatus: b.PaymentStatus,
	}

	// Failed and pending entries never change the derived payment status.
	if t.Status == domain.TransactionCompleted {
		cr, err := s.ledger.ReconcileCharges(ctx, b.ID)
		if err != nil {
			return nil, err
		}
		res.ChargedTotal = cr.ChargedTotal
		if cr.Paid {
			res.PaymentStatus = domain.PaymentPaid
		}
		if cr.ChargedTotal > cr.TotalCost {
			s.loggerf("level=warn msg=%v booking_id=%d charged=%.2f total_cost=%.2f",
				domain.ErrOverpayment, b.ID, cr.ChargedTotal, cr.TotalCost)
		}
		if cr.Paid && b.PaymentStatus == domain.PaymentUnpaid && s.audits != nil {
			_ = s.audits.Record(ctx, domain.AuditRecord{
				ActorID:      actorID,
				Action:       "booking_paid",
				Entity:       "booking",
				EntityID:     b.ID,
				BeforeStatus: string(domain.PaymentUnpaid),
				AfterStatus:  string(domain.PaymentPaid),
			})
		}
	}

	if created && s.audits != nil {
		_ = s.audits.Record(ctx, domain.AuditRecord{
			ActorID:     actorID,
			Action:      "transaction_recorded",
			Entity:      "transaction",
			EntityID:    t.ID,
			AfterStatus: string(t.Status),
		})
	}

	return res, nil
}

// Refund appends a refund entry for a paid booking. Once the refunded sum
// covers the charged sum the booking's payment status flips to refunded and
// a confirmed booking moves to the terminal refunded status.
func (s *Service) Refund(ctx context.Context, actorID int64, actorRole string, bookingID int64, req RefundRequest) (*RefundOutcome, error) {
	b, err := s.loadOwned(ctx, bookingID, actorID, actorRole)
	if err != nil {
		return nil, err
	}
	if b.PaymentStatus != domain.PaymentPaid {
		return nil, fmt.Errorf("%w: refund requires a paid booking, got %s", domain.ErrInvalidTransition, b.PaymentStatus)
	}

	t := &domain.BookingTransaction{
		Reference: req.Reference,
		BookingID: b.ID,
		Kind:      domain.TransactionRefund,
		Status:    domain.TransactionCompleted,
		Amount:    req.Amount,
	}
	created, err := s.ledger.Append(ctx, t)
	if err != nil {
		return nil, err
	}

	rr, err := s.ledger.ReconcileRefunds(ctx, b.ID)
	if err != nil {
		return nil, err
	}

	if rr.Refunded && s.audits != nil {
		_ = s.audits.Record(ctx, domain.AuditRecord{
			ActorID:      actorID,
			Action:       "booking_refunded",
			Entity:       "booking",
			EntityID:     b.ID,
			BeforeStatus: string(domain.PaymentPaid),
			AfterStatus:  string(domain.PaymentRefunded),
		})
	}

	return &RefundOutcome{
		Transaction:   t,
		Duplicate:     !created,
		Refunded:      rr.Refunded,
		RefundedTotal: rr.RefundedTotal,
	}, nil
}

func (s *Service) ListTransactions(ctx context.Context, actorID int64, actorRole string, bookingID int64) ([]domain.BookingTransaction, error) {
	if _, err := s.loadOwned(ctx, bookingID, actorID, actorRole); err != nil {
		return nil, err
	}
	return s.ledger.ListByBooking(ctx, bookingID)
}

func (s *Service) ListPayments(ctx context.Context, actorID int64, actorRole string, bookingID int64) ([]domain.Payment, error) {
	if _, err := s.loadOwned(ctx, bookingID, actorID, actorRole); err != nil {
		return nil, err
	}
	return s.payments.ListByBooking(ctx, bookingID)
}
