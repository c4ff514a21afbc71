package booking

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"tourism/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error) {
	args := m.Called(ctx, userID, limit, offset)
	if v := args.Get(0); v != nil {
		return v.([]domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) UpdateStatusFrom(ctx context.Context, id int64, from, to domain.BookingStatus) (bool, error) {
	args := m.Called(ctx, id, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *mockBookingRepo) CancelWithReason(ctx context.Context, id int64, reason string, at time.Time) error {
	args := m.Called(ctx, id, reason, at)
	return args.Error(0)
}

type mockPlaceReader struct{ mock.Mock }

func (m *mockPlaceReader) GetByID(ctx context.Context, id int64) (*domain.Place, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*domain.Place), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockUserReader struct{ mock.Mock }

func (m *mockUserReader) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockDriverReader struct{ mock.Mock }

func (m *mockDriverReader) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockAssignmentReleaser struct{ mock.Mock }

func (m *mockAssignmentReleaser) ReleaseForDriverWindow(ctx context.Context, driverID int64, start, end, now time.Time) (int, error) {
	args := m.Called(ctx, driverID, start, end, now)
	return args.Int(0), args.Error(1)
}

func newTestService() (*Service, *mockBookingRepo, *mockPlaceReader, *mockUserReader, *mockDriverReader, *mockAssignmentReleaser) {
	bookings := &mockBookingRepo{}
	places := &mockPlaceReader{}
	users := &mockUserReader{}
	drivers := &mockDriverReader{}
	assignments := &mockAssignmentReleaser{}
	svc := NewService(bookings, places, users, drivers, assignments, nil)
	return svc, bookings, places, users, drivers, assignments
}

func TestCreate_StartsPendingUnpaidWithSnapshot(t *testing.T) {
	svc, bookings, places, users, _, _ := newTestService()

	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(4 * time.Hour)

	users.On("Exists", mock.Anything, int64(7)).Return(true, nil)
	places.On("GetByID", mock.Anything, int64(3)).Return(&domain.Place{ID: 3, DefaultPrice: 150}, nil)
	bookings.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Booking).ID = 42
		}).
		Return(nil)

	b, err := svc.Create(context.Background(), 7, CreateBookingRequest{
		PlaceID:   3,
		StartTime: start,
		EndTime:   end,
		TotalCost: 600,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), b.ID)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, domain.PaymentUnpaid, b.PaymentStatus)

	var snap domain.PricingSnapshot
	require.NoError(t, json.Unmarshal(b.PricingSnapshot, &snap))
	assert.Equal(t, int64(3), snap.PlaceID)
	assert.Equal(t, 150.0, snap.DefaultPrice)
	assert.Equal(t, 600.0, snap.RequestedCost)

	bookings.AssertExpectations(t)
}

func TestCreate_RejectsInvertedWindow(t *testing.T) {
	svc, bookings, _, _, _, _ := newTestService()

	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	_, err := svc.Create(context.Background(), 7, CreateBookingRequest{
		PlaceID:   3,
		StartTime: start,
		EndTime:   start,
		TotalCost: 600,
	})
	assert.ErrorIs(t, err, ErrValidation)
	bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestConfirm_UnpaidRejected(t *testing.T) {
	svc, bookings, _, _, _, _ := newTestService()

	bookings.On("GetByID", mock.Anything, int64(42)).Return(&domain.Booking{
		ID:            42,
		UserID:        7,
		Status:        domain.BookingPending,
		PaymentStatus: domain.PaymentUnpaid,
	}, nil)

	_, err := svc.Confirm(context.Background(), 42, 7, string(domain.RoleClient))
	assert.ErrorIs(t, err, ErrInsufficientPayment)
	bookings.AssertNotCalled(t, "UpdateStatusFrom", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirm_PaidPendingSucceeds(t *testing.T) {
	svc, bookings, _, _, _, _ := newTestService()

	pending := &domain.Booking{
		ID:            42,
		UserID:        7,
		Status:        domain.BookingPending,
		PaymentStatus: domain.PaymentPaid,
	}
	confirmed := &domain.Booking{
		ID:            42,
		UserID:        7,
		Status:        domain.BookingConfirmed,
		PaymentStatus: domain.PaymentPaid,
	}

	bookings.On("GetByID", mock.Anything, int64(42)).Return(pending, nil).Once()
	bookings.On("UpdateStatusFrom", mock.Anything, int64(42), domain.BookingPending, domain.BookingConfirmed).Return(true, nil)
	bookings.On("GetByID", mock.Anything, int64(42)).Return(confirmed, nil).Once()

	b, err := svc.Confirm(context.Background(), 42, 7, string(domain.RoleClient))
	require.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
	bookings.AssertExpectations(t)
}

func TestConfirm_CancelledRejected(t *testing.T) {
	svc, bookings, _, _, _, _ := newTestService()

	bookings.On("GetByID", mock.Anything, int64(42)).Return(&domain.Booking{
		ID:            42,
		UserID:        7,
		Status:        domain.BookingCancelled,
		PaymentStatus: domain.PaymentPaid,
	}, nil)

	_, err := svc.Confirm(context.Background(), 42, 7, string(domain.RoleClient))
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestConfirm_OtherUsersBookingForbidden(t *testing.T) {
	svc, bookings, _, _, _, _ := newTestService()

	bookings.On("GetByID", mock.Anything, int64(42)).Return(&domain.Booking{
		ID:            42,
		UserID:        7,
		Status:        domain.BookingPending,
		PaymentStatus: domain.PaymentPaid,
	}, nil)

	_, err := svc.Confirm(context.Background(), 42, 8, string(domain.RoleClient))
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCancel_SecondCancelRejected(t *testing.T) {
	svc, bookings, _, _, _, _ := newTestService()

	bookings.On("GetByID", mock.Anything, int64(42)).Return(&domain.Booking{
		ID:     42,
		UserID: 7,
		Status: domain.BookingCancelled,
	}, nil)

	_, err := svc.Cancel(context.Background(), 42, 7, string(domain.RoleClient), "changed plans")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	bookings.AssertNotCalled(t, "CancelWithReason", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCancel_MissingReasonRejected(t *testing.T) {
	svc, _, _, _, _, _ := newTestService()

	_, err := svc.Cancel(context.Background(), 42, 7, string(domain.RoleClient), "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCancel_ReleasesDriverWindow(t *testing.T) {
	svc, bookings, _, _, _, assignments := newTestService()

	driverID := int64(5)
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(4 * time.Hour)

	confirmed := &domain.Booking{
		ID:        42,
		UserID:    7,
		DriverID:  &driverID,
		StartTime: start,
		EndTime:   end,
		Status:    domain.BookingConfirmed,
	}
	cancelled := &domain.Booking{
		ID:     42,
		UserID: 7,
		Status: domain.BookingCancelled,
	}

	bookings.On("GetByID", mock.Anything, int64(42)).Return(confirmed, nil).Once()
	bookings.On("CancelWithReason", mock.Anything, int64(42), "weather", mock.AnythingOfType("time.Time")).Return(nil)
	assignments.On("ReleaseForDriverWindow", mock.Anything, driverID, start, end, mock.AnythingOfType("time.Time")).Return(1, nil)
	bookings.On("GetByID", mock.Anything, int64(42)).Return(cancelled, nil).Once()

	b, err := svc.Cancel(context.Background(), 42, 7, string(domain.RoleClient), "weather")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, b.Status)
	assignments.AssertExpectations(t)
}
