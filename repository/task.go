package repository

import (
	"context"

	"github.com/lifeboard/backend/domain"
)

// TaskSelection is the persisted UI state of the task collection: the active
// filter and sort mode survive restarts alongside the records.
type TaskSelection struct {
	Filter string `json:"filter"`
	SortBy string `json:"sort_by"`
}

// TaskRepository stores the task collection. Mutations persist the full
// collection state; a persistence failure is reported with a
// PERSISTENCE-coded error while the in-memory state stays applied.
type TaskRepository interface {
	List(ctx context.Context) ([]domain.Task, error)
	Get(ctx context.Context, id string) (*domain.Task, error)
	Add(ctx context.Context, task domain.Task) error
	Update(ctx context.Context, id string, mutate func(*domain.Task)) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
	ClearAll(ctx context.Context) error
	Selection(ctx context.Context) (TaskSelection, error)
	SetSelection(ctx context.Context, sel TaskSelection) error
}
