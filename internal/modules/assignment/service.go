package assignment

import (
	"context"
	"fmt"
	"time"

	"tourism/internal/domain"
)

type Service struct {
	assignments AssignmentRepository
	drivers     DriverReader
	places      PlaceReader
	audits      AuditRecorder
}

func NewService(assignments AssignmentRepository, drivers DriverReader, places PlaceReader, audits AuditRecorder) *Service {
	return &Service{
		assignments: assignments,
		drivers:     drivers,
		places:      places,
		audits:      audits,
	}
}

// Assign books the driver for the window unless an active window overlaps it.
// Windows are half-open, so an assignment ending exactly when this one starts
// is not a conflict.
func (s *Service) Assign(ctx context.Context, actorID int64, req AssignRequest) (*domain.Assignment, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, fmt.Errorf("%w: end_time must be after start_time", domain.ErrValidation)
	}

	ok, err := s.drivers.Exists(ctx, req.DriverID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: driver %d", domain.ErrNotFound, req.DriverID)
	}

	ok, err = s.places.Exists(ctx, req.PlaceID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: place %d", domain.ErrNotFound, req.PlaceID)
	}

	a := &domain.Assignment{
		DriverID:  req.DriverID,
		PlaceID:   req.PlaceID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := s.assignments.CreateIfFree(ctx, a); err != nil {
		return nil, err
	}

	if s.audits != nil {
		_ = s.audits.Record(ctx, domain.AuditRecord{
			ActorID:     actorID,
			Action:      "driver_assigned",
			Entity:      "assignment",
			EntityID:    a.ID,
			AfterStatus: string(domain.DriverUnavailable),
		})
	}

	return a, nil
}

// Release archives the window. Releasing an already archived window is an
// invalid transition, not a no-op.
func (s *Service) Release(ctx context.Context, actorID, assignmentID int64) (*domain.Assignment, error) {
	a, err := s.assignments.Release(ctx, assignmentID, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if s.audits != nil {
		_ = s.audits.Record(ctx, domain.AuditRecord{
			ActorID:  actorID,
			Action:   "assignment_released",
			Entity:   "assignment",
			EntityID: a.ID,
		})
	}

	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Assignment, error) {
	return s.assignments.GetByID(ctx, id)
}

func (s *Service) ListByDriver(ctx context.Context, driverID int64, activeOnly bool) ([]domain.Assignment, error) {
	ok, err := s.drivers.Exists(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: driver %d", domain.ErrNotFound, driverID)
	}
	return s.assignments.ListByDriver(ctx, driverID, activeOnly)
}
