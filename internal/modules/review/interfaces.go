package review

import (
	"context"

	"tourism/internal/domain"
)

type reviewRepo interface {
	Create(ctx context.Context, rev *domain.Review) error
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	ListByPlace(ctx context.Context, placeID int64, limit, offset int) ([]domain.Review, error)
	Delete(ctx context.Context, id int64) error
}

type placeReader interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type auditRecorder interface {
	Record(ctx context.Context, rec domain.AuditRecord) error
}
