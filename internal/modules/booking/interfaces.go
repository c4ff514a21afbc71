package booking

import (
	"context"
	"time"

	"tourism/internal/domain"
)

// BookingRepository defines the interface for booking persistence.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error)
	UpdateStatusFrom(ctx context.Context, id int64, from, to domain.BookingStatus) (bool, error)
	CancelWithReason(ctx context.Context, id int64, reason string, at time.Time) error
}

type PlaceReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Place, error)
}

type UserReader interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type DriverReader interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// AssignmentReleaser archives driver assignment windows overlapping a
// cancelled booking.
type AssignmentReleaser interface {
	ReleaseForDriverWindow(ctx context.Context, driverID int64, start, end, now time.Time) (int, error)
}

type AuditRecorder interface {
	Record(ctx context.Context, rec domain.AuditRecord) error
}
