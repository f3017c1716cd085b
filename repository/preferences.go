package repository

import (
	"context"

	"github.com/lifeboard/backend/domain"
)

// PreferencesRepository stores the singleton settings record.
type PreferencesRepository interface {
	Get(ctx context.Context) (domain.Preferences, error)
	Update(ctx context.Context, mutate func(*domain.Preferences)) (domain.Preferences, error)
	Reset(ctx context.Context) (domain.Preferences, error)
}
