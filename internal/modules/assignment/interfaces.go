package assignment

import (
	"context"
	"time"

	"tourism/internal/domain"
)

// AssignmentRepository owns the atomic check-and-insert for windows; the
// service never re-implements the overlap scan.
type AssignmentRepository interface {
	CreateIfFree(ctx context.Context, a *domain.Assignment) error
	Release(ctx context.Context, id int64, now time.Time) (*domain.Assignment, error)
	GetByID(ctx context.Context, id int64) (*domain.Assignment, error)
	ListByDriver(ctx context.Context, driverID int64, activeOnly bool) ([]domain.Assignment, error)
}

type DriverReader interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type PlaceReader interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type AuditRecorder interface {
	Record(ctx context.Context, rec domain.AuditRecord) error
}
