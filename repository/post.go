package repository

import (
	"context"

	"github.com/lifeboard/backend/domain"
)

// PostSelection is the persisted UI state of the community feed. TagFilter is
// independent of the main filter; both apply when listing.
type PostSelection struct {
	Filter    string `json:"filter"`
	TagFilter string `json:"tag_filter"`
	SortBy    string `json:"sort_by"`
}

// PostRepository stores the community post collection.
type PostRepository interface {
	List(ctx context.Context) ([]domain.Post, error)
	Get(ctx context.Context, id string) (*domain.Post, error)
	Add(ctx context.Context, post domain.Post) error
	Update(ctx context.Context, id string, mutate func(*domain.Post)) (*domain.Post, error)
	Delete(ctx context.Context, id string) error
	ClearAll(ctx context.Context) error
	Selection(ctx context.Context) (PostSelection, error)
	SetSelection(ctx context.Context, sel PostSelection) error
}
