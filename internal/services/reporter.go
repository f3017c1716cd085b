// Package services hosts background jobs that run alongside the HTTP server.
package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/lifeboard/backend/repository"
	analyticsUC "github.com/lifeboard/backend/usecase/analytics"
)

// Reporter takes a periodic snapshot of the headline numbers and logs it.
// The schedule is a standard cron spec; the default fires Monday mornings.
// Users opt out through the weekly-reports notification preference, checked
// at fire time so a settings change takes effect without a restart.
type Reporter struct {
	analytics   *analyticsUC.UseCase
	preferences repository.PreferencesRepository
	schedule    string
	cron        *cron.Cron
	logger      *zap.Logger
}

func NewReporter(analytics *analyticsUC.UseCase, preferences repository.PreferencesRepository, schedule string, logger *zap.Logger) *Reporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reporter{
		analytics:   analytics,
		preferences: preferences,
		schedule:    schedule,
		logger:      logger,
	}
}

// Start registers the cron entry and begins the scheduler.
func (r *Reporter) Start() error {
	r.cron = cron.New()
	if _, err := r.cron.AddFunc(r.schedule, r.run); err != nil {
		return err
	}
	r.cron.Start()
	r.logger.Info("weekly reporter started", zap.String("schedule", r.schedule))
	return nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (r *Reporter) Stop(ctx context.Context) error {
	if r.cron == nil {
		return nil
	}
	done := r.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Reporter) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	prefs, err := r.preferences.Get(ctx)
	if err != nil {
		r.logger.Warn("weekly report skipped, preferences unavailable", zap.Error(err))
		return
	}
	if !prefs.Notifications.WeeklyReports {
		r.logger.Debug("weekly report disabled by preferences")
		return
	}

	summary, err := r.analytics.Summary(ctx, analyticsUC.PeriodWeek)
	if err != nil {
		r.logger.Error("weekly report failed", zap.Error(err))
		return
	}

	r.logger.Info("weekly summary",
		zap.Int("total_tasks", summary.TotalTasks),
		zap.Int("completed_tasks", summary.CompletedTasks),
		zap.Int("completion_rate", summary.CompletionRate),
		zap.Int("total_activities", summary.TotalActivities),
		zap.Float64("total_hours", summary.TotalHours),
		zap.String("most_active_category", summary.MostActiveCategory),
	)
}
