package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tourism/internal/domain"
)

type Service struct {
	bookings    BookingRepository
	places      PlaceReader
	users       UserReader
	drivers     DriverReader
	assignments AssignmentReleaser
	audits      AuditRecorder
}

func NewService(
	bookings BookingRepository,
	places PlaceReader,
	users UserReader,
	drivers DriverReader,
	assignments AssignmentReleaser,
	audits AuditRecorder,
) *Service {
	return &Service{
		bookings:    bookings,
		places:      places,
		users:       users,
		drivers:     drivers,
		assignments: assignments,
		audits:      audits,
	}
}

// Create inserts a pending, unpaid booking. The place's current price terms
// are frozen into the pricing snapshot so later catalog edits cannot change
// what the ledger has to cover.
func (s *Service) Create(ctx context.Context, userID int64, req CreateBookingRequest) (*domain.Booking, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, fmt.Errorf("%w: end_time must be after start_time", ErrValidation)
	}
	if req.TotalCost <= 0 {
		return nil, fmt.Errorf("%w: total_cost must be positive", ErrValidation)
	}

	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}

	place, err := s.places.GetByID(ctx, req.PlaceID)
	if err != nil {
		return nil, err
	}

	if req.DriverID != nil {
		ok, err := s.drivers.Exists(ctx, *req.DriverID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: driver %d", ErrNotFound, *req.DriverID)
		}
	}

	snapshot, err := json.Marshal(domain.PricingSnapshot{
		PlaceID:       place.ID,
		DefaultPrice:  place.DefaultPrice,
		RequestedCost: req.TotalCost,
		CapturedAt:    time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: pricing snapshot: %v", ErrValidation, err)
	}

	b := &domain.Booking{
		UserID:          userID,
		PlaceID:         req.PlaceID,
		DriverID:        req.DriverID,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Status:          domain.BookingPending,
		PaymentStatus:   domain.PaymentUnpaid,
		TotalCost:       req.TotalCost,
		PricingSnapshot: snapshot,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	if s.audits != nil {
		_ = s.audits.Record(ctx, domain.AuditRecord{
			ActorID:     userID,
			Action:      "booking_created",
			Entity:      "booking",
			EntityID:    b.ID,
			AfterStatus: string(domain.BookingPending),
		})
	}

	return b, nil
}

// Confirm moves a pending booking to confirmed. Only a booking whose ledger
// already covers the total cost may be confirmed; the guarded status update
// catches a concurrent transition between read and write.
func (s *Service) Confirm(ctx context.Context, bookingID, actorID int64, actorRole string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != actorID && actorRole != string(domain.RoleAdmin) {
		return nil, ErrForbidden
	}
	if b.Status != domain.BookingPending {
		return nil, fmt.Errorf("%w: cannot confirm a %s booking", ErrInvalidTransition, b.Status)
	}
	if b.PaymentStatus != domain.PaymentPaid {
		return nil, fmt.Errorf("%w: booking %d is %s", ErrInsufficientPayment, b.ID, b.PaymentStatus)
	}

	moved, err := s.bookings.UpdateStatusFrom(ctx, b.ID, domain.BookingPending, domain.BookingConfirmed)
	if err != nil {
		return nil, err
	}
	if !moved {
		return nil, fmt.Errorf("%w: booking %d left pending concurrently", ErrInvalidTransition, b.ID)
	}

	if s.audits != nil {
		_ = s.audits.Record(ctx, domain.AuditRecord{
			ActorID:      actorID,
			Action:       "booking_confirmed",
			Entity:       "booking",
			EntityID:     b.ID,
			BeforeStatus: string(domain.BookingPending),
			AfterStatus:  string(domain.BookingConfirmed),
		})
	}

	return s.bookings.GetByID(ctx, b.ID)
}

// Cancel moves a pending or confirmed booking to cancelled and archives any
// driver assignment windows overlapping the booking. The reason is mandatory.
func (s *Service) Cancel(ctx context.Context, bookingID, actorID int64, actorRole, reason string) (*domain.Booking, error) {
	if reason == "" {
		return nil, fmt.Errorf("%w: cancel reason is required", ErrValidation)
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != actorID && actorRole != string(domain.RoleAdmin) {
		return nil, ErrForbidden
	}
	if b.Status != domain.BookingPending && b.Status != domain.BookingConfirmed {
		return nil, fmt.Errorf("%w: cannot cancel a %s booking", ErrInvalidTransition, b.Status)
	}

	now := time.Now().UTC()
	if err := s.bookings.CancelWithReason(ctx, b.ID, reason, now); err != nil {
		return nil, err
	}

	if b.DriverID != nil {
		if _, err := s.assignments.ReleaseForDriverWindow(ctx, *b.DriverID, b.StartTime, b.EndTime, now); err != nil {
			return nil, err
		}
	}

	if s.audits != nil {
		_ = s.audits.Record(ctx, domain.AuditRecord{
			ActorID:      actorID,
			Action:       "booking_cancelled",
			Entity:       "booking",
			EntityID:     b.ID,
			BeforeStatus: string(b.Status),
			AfterStatus:  string(domain.BookingCancelled),
		})
	}

	return s.bookings.GetByID(ctx, b.ID)
}

func (s *Service) GetByID(ctx context.Context, bookingID, actorID int64, actorRole string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != actorID && actorRole != string(domain.RoleAdmin) {
		return nil, ErrForbidden
	}
	return b, nil
}

func (s *Service) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.bookings.ListByUser(ctx, userID, limit, offset)
}
