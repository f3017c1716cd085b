package profile

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/lifeboard/backend/domain"
	"github.com/lifeboard/backend/repository"
)

// Patch carries a partial profile update; nil fields stay untouched.
type Patch struct {
	Name     *string
	Email    *string
	Bio      *string
	Location *string
	Avatar   *string
	Role     *string
}

type UseCase struct {
	profile repository.ProfileRepository
	logger  *zap.Logger
}

func New(profile repository.ProfileRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		profile: profile,
		logger:  logger,
	}
}

func (uc *UseCase) GetProfile(ctx context.Context) (domain.UserProfile, error) {
	return uc.profile.Get(ctx)
}

func (uc *UseCase) UpdateProfile(ctx context.Context, patch Patch) (domain.UserProfile, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return domain.UserProfile{}, domain.NewError(domain.ErrCodeInvalid, "name is required")
	}
	if patch.Email != nil && strings.TrimSpace(*patch.Email) == "" {
		return domain.UserProfile{}, domain.NewError(domain.ErrCodeInvalid, "email is required")
	}
	if patch.Bio != nil && len(*patch.Bio) > domain.MaxBioLength {
		return domain.UserProfile{}, domain.NewError(domain.ErrCodeInvalid,
			fmt.Sprintf("bio must be at most %d characters", domain.MaxBioLength))
	}
	return uc.profile.Update(ctx, func(p *domain.UserProfile) {
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Email != nil {
			p.Email = *patch.Email
		}
		if patch.Bio != nil {
			p.Bio = *patch.Bio
		}
		if patch.Location != nil {
			p.Location = *patch.Location
		}
		if patch.Avatar != nil {
			p.Avatar = *patch.Avatar
		}
		if patch.Role != nil {
			p.Role = *patch.Role
		}
	})
}

func (uc *UseCase) ResetProfile(ctx context.Context) (domain.UserProfile, error) {
	uc.logger.Warn("resetting profile to defaults")
	return uc.profile.Reset(ctx)
}
