package repository

import (
	"context"
	"fmt"
	"time"

	"tourism/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AssignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

type assignmentModel struct {
	ID         int64      `gorm:"column:id;primaryKey"`
	DriverID   int64      `gorm:"column:driver_id"`
	PlaceID    int64      `gorm:"column:place_id"`
	StartTime  time.Time  `gorm:"column:start_time"`
	EndTime    time.Time  `gorm:"column:end_time"`
	AssignedAt time.Time  `gorm:"column:assigned_at"`
	ReleasedAt *time.Time `gorm:"column:released_at"`
}

func (assignmentModel) TableName() string { return "assignments" }

func toDomainAssignment(m assignmentModel) *domain.Assignment {
	return &domain.Assignment{
		ID:         m.ID,
		DriverID:   m.DriverID,
		PlaceID:    m.PlaceID,
		StartTime:  m.StartTime,
		EndTime:    m.EndTime,
		AssignedAt: m.AssignedAt,
		ReleasedAt: m.ReleasedAt,
	}
}

// CreateIfFree inserts the assignment unless an active window for the same
// driver overlaps it. The driver row is locked for the duration of the
// check-and-insert so two concurrent assigns cannot both pass the scan.
// Windows are half-open: touching endpoints do not conflict.
func (r *AssignmentRepository) CreateIfFree(ctx context.Context, a *domain.Assignment) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var d driverModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&d, a.DriverID).Error; err != nil {
			return err
		}

		var active []assignmentModel
		if err := tx.Where("driver_id = ? AND released_at IS NULL", a.DriverID).
			Find(&active).Error; err != nil {
			return err
		}
		for _, row := range active {
			if toDomainAssignment(row).Overlaps(a.StartTime, a.EndTime) {
				return fmt.Errorf("%w: driver %d already assigned in window", domain.ErrConflict, a.DriverID)
			}
		}

		m := assignmentModel{
			DriverID:   a.DriverID,
			PlaceID:    a.PlaceID,
			StartTime:  a.StartTime,
			EndTime:    a.EndTime,
			AssignedAt: time.Now().UTC(),
		}
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		*a = *toDomainAssignment(m)

		return tx.Model(&driverModel{}).Where("id = ?", a.DriverID).
			Update("status", string(domain.DriverUnavailable)).Error
	})
	return mapError(err)
}

// Release archives the assignment and resets the driver's persisted status
// when no other active window overlaps the release instant.
func (r *AssignmentRepository) Release(ctx context.Context, id int64, now time.Time) (*domain.Assignment, error) {
	var released *domain.Assignment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m assignmentModel
		if err := tx.First(&m, id).Error; err != nil {
			return err
		}
		if !toDomainAssignment(m).Active() {
			return fmt.Errorf("%w: assignment %d already released", domain.ErrInvalidTransition, id)
		}

		var d driverModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&d, m.DriverID).Error; err != nil {
			return err
		}

		if err := tx.Model(&assignmentModel{}).Where("id = ?", id).
			Update("released_at", now).Error; err != nil {
			return err
		}
		m.ReleasedAt = &now
		released = toDomainAssignment(m)

		var cnt int64
		if err := tx.Model(&assignmentModel{}).
			Where("driver_id = ? AND id <> ? AND released_at IS NULL AND start_time <= ? AND ? < end_time",
				m.DriverID, id, now, now).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			return tx.Model(&driverModel{}).Where("id = ?", m.DriverID).
				Update("status", string(domain.DriverAvailable)).Error
		}
		return nil
	})
	if err != nil {
		return nil, mapError(err)
	}
	return released, nil
}

// ReleaseForDriverWindow archives every active assignment for the driver
// that overlaps the given window. Used when a booking is cancelled.
func (r *AssignmentRepository) ReleaseForDriverWindow(ctx context.Context, driverID int64, start, end, now time.Time) (int, error) {
	var affected int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var d driverModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&d, driverID).Error; err != nil {
			return err
		}

		res := tx.Model(&assignmentModel{}).
			Where("driver_id = ? AND released_at IS NULL AND start_time < ? AND ? < end_time",
				driverID, end, start).
			Update("released_at", now)
		if res.Error != nil {
			return res.Error
		}
		affected = int(res.RowsAffected)
		if affected == 0 {
			return nil
		}

		var cnt int64
		if err := tx.Model(&assignmentModel{}).
			Where("driver_id = ? AND released_at IS NULL AND start_time <= ? AND ? < end_time",
				driverID, now, now).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			return tx.Model(&driverModel{}).Where("id = ?", driverID).
				Update("status", string(domain.DriverAvailable)).Error
		}
		return nil
	})
	if err != nil {
		return 0, mapError(err)
	}
	return affected, nil
}

func (r *AssignmentRepository) GetByID(ctx context.Context, id int64) (*domain.Assignment, error) {
	var m assignmentModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, mapError(tx.Error)
	}
	return toDomainAssignment(m), nil
}

func (r *AssignmentRepository) ListByDriver(ctx context.Context, driverID int64, activeOnly bool) ([]domain.Assignment, error) {
	q := r.db.WithContext(ctx).Where("driver_id = ?", driverID)
	if activeOnly {
		q = q.Where("released_at IS NULL")
	}
	var rows []assignmentModel
	tx := q.Order("start_time").Find(&rows)
	if tx.Error != nil {
		return nil, mapError(tx.Error)
	}
	out := make([]domain.Assignment, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainAssignment(m))
	}
	return out, nil
}
