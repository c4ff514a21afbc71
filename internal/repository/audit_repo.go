package repository

import (
	"context"
	"time"

	"tourism/internal/domain"

	"gorm.io/gorm"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

type auditModel struct {
	ID           string    `gorm:"column:id;primaryKey"`
	ActorID      int64     `gorm:"column:actor_id"`
	Action       string    `gorm:"column:action"`
	Entity       string    `gorm:"column:entity"`
	EntityID     int64     `gorm:"column:entity_id"`
	BeforeStatus *string   `gorm:"column:before_status"`
	AfterStatus  *string   `gorm:"column:after_status"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (auditModel) TableName() string { return "audit_records" }

func toDomainAudit(m auditModel) domain.AuditRecord {
	var before, after string
	if m.BeforeStatus != nil {
		before = *m.BeforeStatus
	}
	if m.AfterStatus != nil {
		after = *m.AfterStatus
	}
	return domain.AuditRecord{
		ID:           m.ID,
		ActorID:      m.ActorID,
		Action:       m.Action,
		Entity:       m.Entity,
		EntityID:     m.EntityID,
		BeforeStatus: before,
		AfterStatus:  after,
		CreatedAt:    m.CreatedAt,
	}
}

// Append inserts one record. There is no update or delete path besides the
// retention sweep; audit rows are write-once.
func (r *AuditRepository) Append(ctx context.Context, rec domain.AuditRecord) error {
	var before, after *string
	if rec.BeforeStatus != "" {
		v := rec.BeforeStatus
		before = &v
	}
	if rec.AfterStatus != "" {
		v := rec.AfterStatus
		after = &v
	}
	m := auditModel{
		ID:           rec.ID,
		ActorID:      rec.ActorID,
		Action:       rec.Action,
		Entity:       rec.Entity,
		EntityID:     rec.EntityID,
		BeforeStatus: before,
		AfterStatus:  after,
		CreatedAt:    rec.CreatedAt,
	}
	return mapError(r.db.WithContext(ctx).Create(&m).Error)
}

func (r *AuditRepository) List(ctx context.Context, limit, offset int) ([]domain.AuditRecord, error) {
	var rows []auditModel
	tx := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Offset(offset).Find(&rows)
	if tx.Error != nil {
		return nil, mapError(tx.Error)
	}
	out := make([]domain.AuditRecord, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainAudit(m))
	}
	return out, nil
}

func (r *AuditRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tx := r.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&auditModel{})
	if tx.Error != nil {
		return 0, mapError(tx.Error)
	}
	return tx.RowsAffected, nil
}
