package bolt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeboard/backend/domain"
	"github.com/lifeboard/backend/internal/infrastructure/storage"
)

func TestProfileRepositoryDefaults(t *testing.T) {
	db, _ := openTestDB(t)
	repo, err := NewProfileRepository(db, nil)
	require.NoError(t, err)

	profile, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultProfile(), profile)
}

func TestProfileRepositoryUpdateAndReset(t *testing.T) {
	db, _ := openTestDB(t)
	repo, err := NewProfileRepository(db, nil)
	require.NoError(t, err)
	ctx := context.Background()

	updated, err := repo.Update(ctx, func(p *domain.UserProfile) {
		p.Name = "New Name"
		p.Bio = "short bio"
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "New Name", got.Name)
	assert.Equal(t, "short bio", got.Bio)

	reset, err := repo.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultProfile(), reset)
}

func TestProfileRepositorySurvivesReopen(t *testing.T) {
	db, path := openTestDB(t)
	repo, err := NewProfileRepository(db, nil)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = repo.Update(ctx, func(p *domain.UserProfile) {
		p.Location = "Lisbon"
	})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	reopened, err := storage.Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	repo2, err := NewProfileRepository(reopened, nil)
	require.NoError(t, err)

	got, err := repo2.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Lisbon", got.Location)
}

func TestPreferencesRepositoryDefaultsAndUpdate(t *testing.T) {
	db, _ := openTestDB(t)
	repo, err := NewPreferencesRepository(db, nil)
	require.NoError(t, err)
	ctx := context.Background()

	prefs, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPreferences(), prefs)

	updated, err := repo.Update(ctx, func(p *domain.Preferences) {
		p.Notifications.WeeklyReports = false
		p.Appearance.Language = "de"
	})
	require.NoError(t, err)
	assert.False(t, updated.Notifications.WeeklyReports)
	assert.Equal(t, "de", updated.Appearance.Language)

	reset, err := repo.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPreferences(), reset)
}
