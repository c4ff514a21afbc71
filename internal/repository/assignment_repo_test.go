package repository

import (
	"context"
	"testing"
	"time"

	"tourism/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedDriver(t *testing.T, db *gorm.DB) *domain.Driver {
	t.Helper()
	ctx := context.Background()

	c := &domain.Company{Name: "Silk Road Tours"}
	require.NoError(t, NewCompanyRepository(db).Create(ctx, c))

	l := &domain.Language{Name: "Kazakh"}
	require.NoError(t, NewLanguageRepository(db).Create(ctx, l))

	d := &domain.Driver{
		CompanyID:  c.ID,
		LanguageID: l.ID,
		Name:       "Arman",
		Surname:    "Bekov",
		Age:        35,
		Status:     domain.DriverAvailable,
	}
	require.NoError(t, NewDriverRepository(db).Create(ctx, d))
	return d
}

func TestCreateIfFree_OverlapRejectedAdjacentAllowed(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	d := seedDriver(t, db)
	repo := NewAssignmentRepository(db)
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	first := &domain.Assignment{DriverID: d.ID, PlaceID: 1, StartTime: base, EndTime: base.Add(2 * time.Hour)}
	require.NoError(t, repo.CreateIfFree(ctx, first))

	straddle := &domain.Assignment{DriverID: d.ID, PlaceID: 2, StartTime: base.Add(time.Hour), EndTime: base.Add(3 * time.Hour)}
	assert.ErrorIs(t, repo.CreateIfFree(ctx, straddle), domain.ErrConflict)

	identical := &domain.Assignment{DriverID: d.ID, PlaceID: 2, StartTime: base, EndTime: base.Add(2 * time.Hour)}
	assert.ErrorIs(t, repo.CreateIfFree(ctx, identical), domain.ErrConflict)

	adjacent := &domain.Assignment{DriverID: d.ID, PlaceID: 2, StartTime: base.Add(2 * time.Hour), EndTime: base.Add(4 * time.Hour)}
	require.NoError(t, repo.CreateIfFree(ctx, adjacent))

	got, err := NewDriverRepository(db).GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DriverUnavailable, got.Status)
}

func TestRelease_ArchivesAndFreesWindow(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	d := seedDriver(t, db)
	repo := NewAssignmentRepository(db)
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	a := &domain.Assignment{DriverID: d.ID, PlaceID: 1, StartTime: base, EndTime: base.Add(2 * time.Hour)}
	require.NoError(t, repo.CreateIfFree(ctx, a))

	released, err := repo.Release(ctx, a.ID, time.Now().UTC())
	require.NoError(t, err)
	require.NotNil(t, released.ReleasedAt)

	_, err = repo.Release(ctx, a.ID, time.Now().UTC())
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	// The archived window no longer blocks a new assignment.
	again := &domain.Assignment{DriverID: d.ID, PlaceID: 2, StartTime: base, EndTime: base.Add(2 * time.Hour)}
	require.NoError(t, repo.CreateIfFree(ctx, again))
}
