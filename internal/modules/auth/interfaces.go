package auth

import (
	"context"
	"time"

	"tourism/internal/domain"
)

type userRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	TouchLastOnline(ctx context.Context, id int64, at time.Time) error
}

type tokenIssuer interface {
	GenerateToken(userID int64, role string) (string, error)
}

type auditRecorder interface {
	Record(ctx context.Context, rec domain.AuditRecord) error
}
