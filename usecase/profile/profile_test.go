package profile

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeboard/backend/domain"
	"github.com/lifeboard/backend/internal/infrastructure/storage"
	boltRepo "github.com/lifeboard/backend/repository/bolt"
)

func newTestUseCase(t *testing.T) *UseCase {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo, err := boltRepo.NewProfileRepository(db, nil)
	require.NoError(t, err)
	return New(repo, nil)
}

func strPtr(s string) *string { return &s }

func TestUpdateProfilePartial(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	before, err := uc.GetProfile(ctx)
	require.NoError(t, err)

	updated, err := uc.UpdateProfile(ctx, Patch{Name: strPtr("Jordan Reyes")})
	require.NoError(t, err)
	assert.Equal(t, "Jordan Reyes", updated.Name)
	// Untouched fields keep their values.
	assert.Equal(t, before.Email, updated.Email)
	assert.Equal(t, before.Bio, updated.Bio)
}

func TestUpdateProfileRejectsBlankName(t *testing.T) {
	uc := newTestUseCase(t)

	_, err := uc.UpdateProfile(context.Background(), Patch{Name: strPtr("   ")})
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}

func TestUpdateProfileRejectsBlankEmail(t *testing.T) {
	uc := newTestUseCase(t)

	_, err := uc.UpdateProfile(context.Background(), Patch{Email: strPtr("")})
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}

func TestUpdateProfileBioLimit(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	atLimit := strings.Repeat("a", domain.MaxBioLength)
	updated, err := uc.UpdateProfile(ctx, Patch{Bio: strPtr(atLimit)})
	require.NoError(t, err)
	assert.Equal(t, atLimit, updated.Bio)

	tooLong := strings.Repeat("a", domain.MaxBioLength+1)
	_, err = uc.UpdateProfile(ctx, Patch{Bio: strPtr(tooLong)})
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))

	// Failed update leaves the stored bio alone.
	got, err := uc.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, atLimit, got.Bio)
}

func TestResetProfile(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.UpdateProfile(ctx, Patch{Name: strPtr("Someone Else"), Location: strPtr("Oslo")})
	require.NoError(t, err)

	reset, err := uc.ResetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultProfile(), reset)
}
