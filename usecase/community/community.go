package community

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/lifeboard/backend/domain"
	"github.com/lifeboard/backend/repository"
)

// Patch carries a partial post update; nil fields stay untouched.
type Patch struct {
	Title *string
	Body  *string
	Tags  []string
}

type UseCase struct {
	posts           repository.PostRepository
	profile         repository.ProfileRepository
	popularMinLikes int
	logger          *zap.Logger
}

func New(posts repository.PostRepository, profile repository.ProfileRepository, popularMinLikes int, logger *zap.Logger) *UseCase {
	if popularMinLikes < 0 {
		popularMinLikes = DefaultPopularMinLikes
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		posts:           posts,
		profile:         profile,
		popularMinLikes: popularMinLikes,
		logger:          logger,
	}
}

// ListPosts returns the derived feed. Empty selector values fall back to the
// persisted selection state.
func (uc *UseCase) ListPosts(ctx context.Context, filter Filter, tagFilter string, sortBy SortBy) ([]domain.Post, error) {
	sel, err := uc.posts.Selection(ctx)
	if err != nil {
		return nil, err
	}
	if filter == "" {
		filter = Filter(sel.Filter)
	}
	if tagFilter == "" {
		tagFilter = sel.TagFilter
	}
	if sortBy == "" {
		sortBy = SortBy(sel.SortBy)
	}

	profile, err := uc.profile.Get(ctx)
	if err != nil {
		return nil, err
	}
	posts, err := uc.posts.List(ctx)
	if err != nil {
		return nil, err
	}
	return Derive(posts, View{
		Filter:          filter,
		TagFilter:       tagFilter,
		SortBy:          sortBy,
		Author:          profile.Name,
		PopularMinLikes: uc.popularMinLikes,
	}), nil
}

func (uc *UseCase) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	return uc.posts.Get(ctx, id)
}

// CreatePost validates the draft and publishes it under the current profile's
// name and avatar.
func (uc *UseCase) CreatePost(ctx context.Context, title, body string, tags []string) (*domain.Post, error) {
	if strings.TrimSpace(title) == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "post title is required")
	}
	if strings.TrimSpace(body) == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "post body is required")
	}
	profile, err := uc.profile.Get(ctx)
	if err != nil {
		return nil, err
	}
	created := domain.NewPost(domain.PostDraft{
		Author: profile.Name,
		Avatar: profile.Avatar,
		Title:  title,
		Body:   body,
		Tags:   tags,
	})
	if err := uc.posts.Add(ctx, created); err != nil {
		if domain.IsDomainError(err, domain.ErrCodePersistence) {
			return &created, err
		}
		return nil, err
	}
	return &created, nil
}

func (uc *UseCase) UpdatePost(ctx context.Context, id string, patch Patch) (*domain.Post, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "post title is required")
	}
	if patch.Body != nil && strings.TrimSpace(*patch.Body) == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "post body is required")
	}
	return uc.posts.Update(ctx, id, func(p *domain.Post) {
		if patch.Title != nil {
			p.Title = *patch.Title
		}
		if patch.Body != nil {
			p.Body = *patch.Body
		}
		if patch.Tags != nil {
			p.Tags = patch.Tags
		}
	})
}

// LikePost increments the like counter. Every call counts; there is no unlike
// and no per-user cap.
func (uc *UseCase) LikePost(ctx context.Context, id string) (*domain.Post, error) {
	return uc.posts.Update(ctx, id, func(p *domain.Post) {
		p.Like()
	})
}

func (uc *UseCase) DeletePost(ctx context.Context, id string) error {
	return uc.posts.Delete(ctx, id)
}

func (uc *UseCase) ClearAll(ctx context.Context) error {
	uc.logger.Warn("clearing all posts")
	return uc.posts.ClearAll(ctx)
}

func (uc *UseCase) Stats(ctx context.Context) (Stats, error) {
	profile, err := uc.profile.Get(ctx)
	if err != nil {
		return Stats{}, err
	}
	posts, err := uc.posts.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(posts, profile.Name), nil
}

func (uc *UseCase) Selection(ctx context.Context) (repository.PostSelection, error) {
	return uc.posts.Selection(ctx)
}

func (uc *UseCase) SetSelection(ctx context.Context, sel repository.PostSelection) error {
	return uc.posts.SetSelection(ctx, sel)
}
