package audit

import (
	"context"
	"time"

	"tourism/internal/domain"

	"github.com/google/uuid"
)

type Service struct {
	records auditRepo
	loggerf func(format string, args ...interface{})
}

func NewService(records auditRepo, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{records: records, loggerf: loggerf}
}

// Record appends one activity entry. The write happens outside any business
// transaction: a failing audit store is logged and reported to the caller,
// which discards the error and carries on.
func (s *Service) Record(ctx context.Context, rec domain.AuditRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	if err := s.records.Append(ctx, rec); err != nil {
		s.loggerf("level=error msg=audit append failed action=%s entity=%s entity_id=%d err=%v",
			rec.Action, rec.Entity, rec.EntityID, err)
		return err
	}
	return nil
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]domain.AuditRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}
	return s.records.List(ctx, limit, offset)
}

// Cleanup deletes records older than the retention window and returns how
// many rows went away.
func (s *Service) Cleanup(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-retention)
	return s.records.DeleteOlderThan(ctx, cutoff)
}
