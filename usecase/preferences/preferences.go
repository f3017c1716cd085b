package preferences

import (
	"context"

	"go.uber.org/zap"

	"github.com/lifeboard/backend/domain"
	"github.com/lifeboard/backend/repository"
)

// Patch updates whole preference groups; nil groups stay untouched. Group
// granularity mirrors how the settings screen saves toggles.
type Patch struct {
	Notifications *domain.NotificationPrefs
	Appearance    *domain.AppearancePrefs
	Privacy       *domain.PrivacyPrefs
	Data          *domain.DataPrefs
}

type UseCase struct {
	preferences repository.PreferencesRepository
	logger      *zap.Logger
}

func New(preferences repository.PreferencesRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		preferences: preferences,
		logger:      logger,
	}
}

func (uc *UseCase) GetPreferences(ctx context.Context) (domain.Preferences, error) {
	return uc.preferences.Get(ctx)
}

func (uc *UseCase) UpdatePreferences(ctx context.Context, patch Patch) (domain.Preferences, error) {
	if patch.Appearance != nil && patch.Appearance.Language == "" {
		return domain.Preferences{}, domain.NewError(domain.ErrCodeInvalid, "language code is required")
	}
	return uc.preferences.Update(ctx, func(p *domain.Preferences) {
		if patch.Notifications != nil {
			p.Notifications = *patch.Notifications
		}
		if patch.Appearance != nil {
			p.Appearance = *patch.Appearance
		}
		if patch.Privacy != nil {
			p.Privacy = *patch.Privacy
		}
		if patch.Data != nil {
			p.Data = *patch.Data
		}
	})
}

func (uc *UseCase) ResetPreferences(ctx context.Context) (domain.Preferences, error) {
	uc.logger.Warn("resetting preferences to defaults")
	return uc.preferences.Reset(ctx)
}
