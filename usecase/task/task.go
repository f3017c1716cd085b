package task

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/lifeboard/backend/domain"
	"github.com/lifeboard/backend/repository"
)

// Patch carries a partial task update; nil fields stay untouched.
type Patch struct {
	Title        *string
	Description  *string
	Priority     *domain.Priority
	DueDate      *time.Time
	ClearDueDate bool
	Tags         []string
}

type UseCase struct {
	tasks  repository.TaskRepository
	logger *zap.Logger
}

func New(tasks repository.TaskRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:  tasks,
		logger: logger,
	}
}

// ListTasks returns the filtered, sorted view. Empty selector values fall back
// to the persisted selection state.
func (uc *UseCase) ListTasks(ctx context.Context, filter Filter, sortBy SortBy) ([]domain.Task, error) {
	if filter == "" || sortBy == "" {
		sel, err := uc.tasks.Selection(ctx)
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
	tasks, err := uc.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	return Derive(tasks, filter, sortBy), nil
}

func (uc *UseCase) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	return uc.tasks.Get(ctx, id)
}

// CreateTask validates the draft and stores a new task. On a persistence
// failure the task is still returned alongside the warning error.
func (uc *UseCase) CreateTask(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "task title is required")
	}
	created := domain.NewTask(draft)
	if err := uc.tasks.Add(ctx, created); err != nil {
		if domain.IsDomainError(err, domain.ErrCodePersistence) {
			return &created, err
		}
		return nil, err
	}
	return &created, nil
}

func (uc *UseCase) UpdateTask(ctx context.Context, id string, patch Patch) (*domain.Task, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "task title is required")
	}
	return uc.tasks.Update(ctx, id, func(t *domain.Task) {
		if patch.Title != nil {
			t.Title = *patch.Title
		}
		if patch.Description != nil {
			t.Description = *patch.Description
		}
		if patch.Priority != nil && patch.Priority.Valid() {
			t.Priority = *patch.Priority
		}
		if patch.ClearDueDate {
			t.DueDate = nil
		} else if patch.DueDate != nil {
			due := *patch.DueDate
			t.DueDate = &due
		}
		if patch.Tags != nil {
			t.Tags = patch.Tags
		}
	})
}

// ToggleTask flips completion; the completed_at stamp follows the invariant.
func (uc *UseCase) ToggleTask(ctx context.Context, id string) (*domain.Task, error) {
	return uc.tasks.Update(ctx, id, func(t *domain.Task) {
		t.Toggle(time.Now().UTC())
	})
}

func (uc *UseCase) DeleteTask(ctx context.Context, id string) error {
	return uc.tasks.Delete(ctx, id)
}

func (uc *UseCase) ClearAll(ctx context.Context) error {
	uc.logger.Warn("clearing all tasks")
	return uc.tasks.ClearAll(ctx)
}

func (uc *UseCase) Stats(ctx context.Context) (Stats, error) {
	tasks, err := uc.tasks.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(tasks, time.Now()), nil
}

func (uc *UseCase) Selection(ctx context.Context) (repository.TaskSelection, error) {
	return uc.tasks.Selection(ctx)
}

func (uc *UseCase) SetSelection(ctx context.Context, sel repository.TaskSelection) error {
	return uc.tasks.SetSelection(ctx, sel)
}
