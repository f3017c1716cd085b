package analytics

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/lifeboard/backend/repository"
)

// UseCase reads the task and activity collections and serves the derived
// chart data. Nothing is cached; every call recomputes from current state.
type UseCase struct {
	tasks      repository.TaskRepository
	activities repository.ActivityRepository
	logger     *zap.Logger
}

func New(tasks repository.TaskRepository, activities repository.ActivityRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:      tasks,
		activities: activities,
		logger:     logger,
	}
}

// Weekly buckets task churn for the last days days (1, 7 or 30).
func (uc *UseCase) Weekly(ctx context.Context, days int) ([]DayStat, error) {
	tasks, err := uc.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	return WeeklyTaskStats(tasks, days, time.Now()), nil
}

func (uc *UseCase) Categories(ctx context.Context) ([]CategorySlice, error) {
	activities, err := uc.activities.List(ctx)
	if err != nil {
		return nil, err
	}
	return CategoryBreakdown(activities), nil
}

func (uc *UseCase) ActivityTimeline(ctx context.Context, days int) ([]TimelinePoint, error) {
	activities, err := uc.activities.List(ctx)
	if err != nil {
		return nil, err
	}
	return Timeline(activities, days, time.Now()), nil
}

func (uc *UseCase) Priorities(ctx context.Context) ([]PriorityBand, error) {
	tasks, err := uc.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	return PriorityDistribution(tasks), nil
}

func (uc *UseCase) Recent(ctx context.Context, limit int) ([]Event, error) {
	tasks, err := uc.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	activities, err := uc.activities.List(ctx)
	if err != nil {
		return nil, err
	}
	return RecentEvents(tasks, activities, limit), nil
}

func (uc *UseCase) Summary(ctx context.Context, period Period) (Summary, error) {
	tasks, err := uc.tasks.List(ctx)
	if err != nil {
		return Summary{}, err
	}
	activities, err := uc.activities.List(ctx)
	if err != nil {
		return Summary{}, err
	}
	return SummaryKPIs(tasks, activities, period, time.Now()), nil
}
