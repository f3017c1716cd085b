package activity

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/lifeboard/backend/domain"
	"github.com/lifeboard/backend/repository"
)

// Patch carries a partial activity update; nil fields stay untouched.
type Patch struct {
	Title       *string
	Description *string
	Category    *domain.Category
	Date        *time.Time
	Duration    *int
	Tags        []string
}

type UseCase struct {
	activities repository.ActivityRepository
	logger     *zap.Logger
}

func New(activities repository.ActivityRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		activities: activities,
		logger:     logger,
	}
}

// ListActivities returns the filtered, sorted view. Empty selector values
// fall back to the persisted selection state.
func (uc *UseCase) ListActivities(ctx context.Context, filter Filter, sortBy SortBy) ([]domain.Activity, error) {
	if filter == "" || sortBy == "" {
		sel, err := uc.activities.Selection(ctx)
		if err != nil {
			return nil, err
		}
		if filter == "" {
			filter = Filter(sel.Filter)
		}
		if sortBy == "" {
			sortBy = SortBy(sel.SortBy)
		}
	}
	activities, err := uc.activities.List(ctx)
	if err != nil {
		return nil, err
	}
	return Derive(activities, filter, sortBy), nil
}

func (uc *UseCase) GetActivity(ctx context.Context, id string) (*domain.Activity, error) {
	return uc.activities.Get(ctx, id)
}

// CreateActivity validates the draft and stores a new activity. On a
// persistence failure the activity is still returned alongside the warning.
func (uc *UseCase) CreateActivity(ctx context.Context, draft domain.ActivityDraft) (*domain.Activity, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "activity title is required")
	}
	if draft.Duration < 0 {
		return nil, domain.NewError(domain.ErrCodeInvalid, "activity duration must not be negative")
	}
	created := domain.NewActivity(draft)
	if err := uc.activities.Add(ctx, created); err != nil {
		if domain.IsDomainError(err, domain.ErrCodePersistence) {
			return &created, err
		}
		return nil, err
	}
	return &created, nil
}

func (uc *UseCase) UpdateActivity(ctx context.Context, id string, patch Patch) (*domain.Activity, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "activity title is required")
	}
	if patch.Duration != nil && *patch.Duration < 0 {
		return nil, domain.NewError(domain.ErrCodeInvalid, "activity duration must not be negative")
	}
	return uc.activities.Update(ctx, id, func(a *domain.Activity) {
		if patch.Title != nil {
			a.Title = *patch.Title
		}
		if patch.Description != nil {
			a.Description = *patch.Description
		}
		if patch.Category != nil && patch.Category.Valid() {
			a.Category = *patch.Category
		}
		if patch.Date != nil {
			a.Date = *patch.Date
		}
		if patch.Duration != nil {
			a.Duration = *patch.Duration
		}
		if patch.Tags != nil {
			a.Tags = patch.Tags
		}
	})
}

func (uc *UseCase) DeleteActivity(ctx context.Context, id string) error {
	return uc.activities.Delete(ctx, id)
}

func (uc *UseCase) ClearAll(ctx context.Context) error {
	uc.logger.Warn("clearing all activities")
	return uc.activities.ClearAll(ctx)
}

func (uc *UseCase) Stats(ctx context.Context) (Stats, error) {
	activities, err := uc.activities.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(activities, time.Now()), nil
}

// RecentActivities feeds the dashboard's latest-activity card.
func (uc *UseCase) RecentActivities(ctx context.Context, limit int) ([]domain.Activity, error) {
	activities, err := uc.activities.List(ctx)
	if err != nil {
		return nil, err
	}
	return Recent(activities, limit), nil
}

func (uc *UseCase) Selection(ctx context.Context) (repository.ActivitySelection, error) {
	return uc.activities.Selection(ctx)
}

func (uc *UseCase) SetSelection(ctx context.Context, sel repository.ActivitySelection) error {
	return uc.activities.SetSelection(ctx, sel)
}
