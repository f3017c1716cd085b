package repository

import (
	"context"

	"github.com/lifeboard/backend/domain"
)

// ProfileRepository stores the singleton user profile.
type ProfileRepository interface {
	Get(ctx context.Context) (domain.UserProfile, error)
	Update(ctx context.Context, mutate func(*domain.UserProfile)) (domain.UserProfile, error)
	Reset(ctx context.Context) (domain.UserProfile, error)
}
