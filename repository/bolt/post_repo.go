package bolt

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/lifeboard/backend/domain"
	"github.com/lifeboard/backend/internal/infrastructure/storage"
	"github.com/lifeboard/backend/repository"
)

type postDocument struct {
	SchemaVersion int                      `json:"schema_version"`
	Posts         []domain.Post            `json:"posts"`
	Selection     repository.PostSelection `json:"selection"`
}

// PostRepository implements repository.PostRepository on top of storage.DB.
type PostRepository struct {
	db     *storage.DB
	logger *zap.Logger

	mu  sync.RWMutex
	doc postDocument
}

func NewPostRepository(db *storage.DB, logger *zap.Logger) (*PostRepository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &PostRepository{db: db, logger: logger}

	found, err := db.Get(collectionPosts, &r.doc)
	if err != nil {
		return nil, err
	}
	if !found {
		r.doc = postDocument{
			SchemaVersion: schemaVersion,
			Posts:         []domain.Post{},
			Selection:     repository.PostSelection{Filter: "all", TagFilter: "all", SortBy: "newest"},
		}
	}
	if r.doc.Posts == nil {
		r.doc.Posts = []domain.Post{}
	}
	return r, nil
}

func (r *PostRepository) List(ctx context.Context) ([]domain.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Post, len(r.doc.Posts))
	copy(out, r.doc.Posts)
	return out, nil
}

func (r *PostRepository) Get(ctx context.Context, id string) (*domain.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.doc.Posts {
		if p.ID == id {
			post := p
			return &post, nil
		}
	}
	return nil, domain.ErrPostNotFound
}

// Add prepends the post so the feed stays newest-first.
func (r *PostRepository) Add(ctx context.Context, post domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := make([]domain.Post, 0, len(r.doc.Posts)+1)
	next = append(next, post)
	next = append(next, r.doc.Posts...)
	r.doc.Posts = next
	return r.persist()
}

func (r *PostRepository) Update(ctx context.Context, id string, mutate func(*domain.Post)) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.doc.Posts {
		if p.ID != id {
			continue
		}
		post := p
		mutate(&post)
		post.ID = id
		post.CreatedAt = p.CreatedAt

		next := make([]domain.Post, len(r.doc.Posts))
		copy(next, r.doc.Posts)
		next[i] = post
		r.doc.Posts = next
		return &post, r.persist()
	}
	return nil, domain.ErrPostNotFound
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := make([]domain.Post, 0, len(r.doc.Posts))
	for _, p := range r.doc.Posts {
		if p.ID != id {
			next = append(next, p)
		}
	}
	if len(next) == len(r.doc.Posts) {
		return domain.ErrPostNotFound
	}
	r.doc.Posts = next
	return r.persist()
}

func (r *PostRepository) ClearAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doc.Posts = []domain.Post{}
	return r.persist()
}

func (r *PostRepository) Selection(ctx context.Context) (repository.PostSelection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.doc.Selection, nil
}

func (r *PostRepository) SetSelection(ctx context.Context, sel repository.PostSelection) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doc.Selection = sel
	return r.persist()
}

// Count reports the number of stored posts for health monitoring.
func (r *PostRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.doc.Posts)
}

// Name returns the collection name.
func (r *PostRepository) Name() string { return collectionPosts }

func (r *PostRepository) persist() error {
	if err := r.db.Put(collectionPosts, r.doc); err != nil {
		r.logger.Warn("post collection write failed", zap.Error(err))
		return persistErr(collectionPosts, err)
	}
	return nil
}
