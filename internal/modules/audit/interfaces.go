package audit

import (
	"context"
	"time"

	"tourism/internal/domain"
)

type auditRepo interface {
	Append(ctx context.Context, rec domain.AuditRecord) error
	List(ctx context.Context, limit, offset int) ([]domain.AuditRecord, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
