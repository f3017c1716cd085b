package repository

import (
	"context"

	"github.com/lifeboard/backend/domain"
)

// ActivitySelection is the persisted UI state of the activity collection.
type ActivitySelection struct {
	Filter string `json:"filter"`
	SortBy string `json:"sort_by"`
}

// ActivityRepository stores the activity collection.
type ActivityRepository interface {
	List(ctx context.Context) ([]domain.Activity, error)
	Get(ctx context.Context, id string) (*domain.Activity, error)
	Add(ctx context.Context, activity domain.Activity) error
	Update(ctx context.Context, id string, mutate func(*domain.Activity)) (*domain.Activity, error)
	Delete(ctx context.Context, id string) error
	ClearAll(ctx context.Context) error
	Selection(ctx context.Context) (ActivitySelection, error)
	SetSelection(ctx context.Context, sel ActivitySelection) error
}
