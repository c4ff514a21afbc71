package assignment

import (
	"context"
	"fmt"
	"testing"
	"time"

	"tourism/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAssignmentRepo struct{ mock.Mock }

func (m *mockAssignmentRepo) CreateIfFree(ctx context.Context, a *domain.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *mockAssignmentRepo) Release(ctx context.Context, id int64, now time.Time) (*domain.Assignment, error) {
	args := m.Called(ctx, id, now)
	if a := args.Get(0); a != nil {
		return a.(*domain.Assignment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAssignmentRepo) GetByID(ctx context.Context, id int64) (*domain.Assignment, error) {
	args := m.Called(ctx, id)
	if a := args.Get(0); a != nil {
		return a.(*domain.Assignment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAssignmentRepo) ListByDriver(ctx context.Context, driverID int64, activeOnly bool) ([]domain.Assignment, error) {
	args := m.Called(ctx, driverID, activeOnly)
	if v := args.Get(0); v != nil {
		return v.([]domain.Assignment), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockExists struct{ mock.Mock }

func (m *mockExists) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestAssign_OverlapConflictSurfaces(t *testing.T) {
	repo := &mockAssignmentRepo{}
	drivers := &mockExists{}
	places := &mockExists{}
	svc := NewService(repo, drivers, places, nil)

	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	drivers.On("Exists", mock.Anything, int64(5)).Return(true, nil)
	places.On("Exists", mock.Anything, int64(3)).Return(true, nil)
	repo.On("CreateIfFree", mock.Anything, mock.AnythingOfType("*domain.Assignment")).
		Return(fmt.Errorf("%w: driver 5 already assigned in window", domain.ErrConflict))

	_, err := svc.Assign(context.Background(), 1, AssignRequest{
		DriverID:  5,
		PlaceID:   3,
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestAssign_AdjacentWindowAccepted(t *testing.T) {
	repo := &mockAssignmentRepo{}
	drivers := &mockExists{}
	places := &mockExists{}
	svc := NewService(repo, drivers, places, nil)

	start := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	drivers.On("Exists", mock.Anything, int64(5)).Return(true, nil)
	places.On("Exists", mock.Anything, int64(3)).Return(true, nil)
	repo.On("CreateIfFree", mock.Anything, mock.AnythingOfType("*domain.Assignment")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Assignment).ID = 9
		}).
		Return(nil)

	a, err := svc.Assign(context.Background(), 1, AssignRequest{
		DriverID:  5,
		PlaceID:   3,
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), a.ID)
}

func TestAssign_InvertedWindowRejected(t *testing.T) {
	repo := &mockAssignmentRepo{}
	svc := NewService(repo, &mockExists{}, &mockExists{}, nil)

	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	_, err := svc.Assign(context.Background(), 1, AssignRequest{
		DriverID:  5,
		PlaceID:   3,
		StartTime: start,
		EndTime:   start,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
	repo.AssertNotCalled(t, "CreateIfFree", mock.Anything, mock.Anything)
}

func TestAssign_UnknownDriverRejected(t *testing.T) {
	repo := &mockAssignmentRepo{}
	drivers := &mockExists{}
	svc := NewService(repo, drivers, &mockExists{}, nil)

	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	drivers.On("Exists", mock.Anything, int64(99)).Return(false, nil)

	_, err := svc.Assign(context.Background(), 1, AssignRequest{
		DriverID:  99,
		PlaceID:   3,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRelease_AlreadyReleasedRejected(t *testing.T) {
	repo := &mockAssignmentRepo{}
	svc := NewService(repo, &mockExists{}, &mockExists{}, nil)

	repo.On("Release", mock.Anything, int64(9), mock.AnythingOfType("time.Time")).
		Return(nil, fmt.Errorf("%w: assignment 9 already released", domain.ErrInvalidTransition))

	_, err := svc.Release(context.Background(), 1, 9)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}
