package repository

import (
	"context"
	"fmt"
	"time"

	"tourism/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID              int64      `gorm:"column:id;primaryKey"`
	UserID          int64      `gorm:"column:user_id"`
	PlaceID         int64      `gorm:"column:place_id"`
	DriverID        *int64     `gorm:"column:driver_id"`
	StartTime       time.Time  `gorm:"column:start_time"`
	EndTime         time.Time  `gorm:"column:end_time"`
	Status          string     `gorm:"column:status"`
	PaymentStatus   string     `gorm:"column:payment_status"`
	TotalCost       float64    `gorm:"column:total_cost"`
	PricingSnapshot []byte     `gorm:"column:pricing_snapshot"`
	CancelReason    *string    `gorm:"column:cancel_reason"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at"`
	CancelledAt     *time.Time `gorm:"column:cancelled_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var reason string
	if m.CancelReason != nil {
		reason = *m.CancelReason
	}

	return &domain.Booking{
		ID:              m.ID,
		UserID:          m.UserID,
		PlaceID:         m.PlaceID,
		DriverID:        m.DriverID,
		StartTime:       m.StartTime,
		EndTime:         m.EndTime,
		Status:          domain.BookingStatus(m.Status),
		PaymentStatus:   domain.PaymentStatus(m.PaymentStatus),
		TotalCost:       m.TotalCost,
		PricingSnapshot: m.PricingSnapshot,
		CancelReason:    reason,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		CancelledAt:     m.CancelledAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var reason *string
	if b.CancelReason != "" {
		v := b.CancelReason
		reason = &v
	}

	return bookingModel{
		ID:              b.ID,
		UserID:          b.UserID,
		PlaceID:         b.PlaceID,
		DriverID:        b.DriverID,
		StartTime:       b.StartTime,
		EndTime:         b.EndTime,
		Status:          string(b.Status),
		PaymentStatus:   string(b.PaymentStatus),
		TotalCost:       b.TotalCost,
		PricingSnapshot: b.PricingSnapshot,
		CancelReason:    reason,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
		CancelledAt:     b.CancelledAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return mapError(tx.Error)
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, mapError(tx.Error)
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&rows)
	if tx.Error != nil {
		return nil, mapError(tx.Error)
	}
	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// UpdateStatusFrom moves the booking from one status to another and reports
// whether the guarded update actually applied. A zero-row update means the
// booking was concurrently moved out of the expected status.
func (r *BookingRepository) UpdateStatusFrom(ctx context.Context, id int64, from, to domain.BookingStatus) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Update("status", string(to))
	if tx.Error != nil {
		return false, mapError(tx.Error)
	}
	return tx.RowsAffected > 0, nil
}

// CancelWithReason moves the booking to cancelled, guarded the same way as
// UpdateStatusFrom: only pending and confirmed bookings match, so a second
// cancel (or a cancel racing another transition) affects zero rows.
func (r *BookingRepository) CancelWithReason(ctx context.Context, id int64, reason string, at time.Time) error {
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ? AND status IN ?", id, []string{
			string(domain.BookingPending),
			string(domain.BookingConfirmed),
		}).
		Updates(map[string]any{
			"status":        string(domain.BookingCancelled),
			"cancel_reason": reason,
			"cancelled_at":  at,
		})
	if tx.Error != nil {
		return mapError(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return fmt.Errorf("%w: booking %d is not pending or confirmed", domain.ErrInvalidTransition, id)
	}
	return nil
}

func (r *BookingRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).Where("id = ?", id).Count(&cnt)
	if tx.Error != nil {
		return false, mapError(tx.Error)
	}
	return cnt > 0, nil
}
