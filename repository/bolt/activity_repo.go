package bolt

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/lifeboard/backend/domain"
	"github.com/lifeboard/backend/internal/infrastructure/storage"
	"github.com/lifeboard/backend/repository"
)

type activityDocument struct {
	SchemaVersion int                          `json:"schema_version"`
	Activities    []domain.Activity            `json:"activities"`
	Selection     repository.ActivitySelection `json:"selection"`
}

// ActivityRepository implements repository.ActivityRepository on top of storage.DB.
type ActivityRepository struct {
	db     *storage.DB
	logger *zap.Logger

	mu  sync.RWMutex
	doc activityDocument
}

func NewActivityRepository(db *storage.DB, logger *zap.Logger) (*ActivityRepository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &ActivityRepository{db: db, logger: logger}

	found, err := db.Get(collectionActivities, &r.doc)
	if err != nil {
		return nil, err
	}
	if !found {
		r.doc = activityDocument{
			SchemaVersion: schemaVersion,
			Activities:    []domain.Activity{},
			Selection:     repository.ActivitySelection{Filter: "all", SortBy: "date"},
		}
	}
	if r.doc.Activities == nil {
		r.doc.Activities = []domain.Activity{}
	}
	return r, nil
}

func (r *ActivityRepository) List(ctx context.Context) ([]domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Activity, len(r.doc.Activities))
	copy(out, r.doc.Activities)
	return out, nil
}

func (r *ActivityRepository) Get(ctx context.Context, id string) (*domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.doc.Activities {
		if a.ID == id {
			activity := a
			return &activity, nil
		}
	}
	return nil, domain.ErrActivityNotFound
}

// Add prepends the activity so the list stays newest-first.
func (r *ActivityRepository) Add(ctx context.Context, activity domain.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := make([]domain.Activity, 0, len(r.doc.Activities)+1)
	next = append(next, activity)
	next = append(next, r.doc.Activities...)
	r.doc.Activities = next
	return r.persist()
}

func (r *ActivityRepository) Update(ctx context.Context, id string, mutate func(*domain.Activity)) (*domain.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, a := range r.doc.Activities {
		if a.ID != id {
			continue
		}
		activity := a
		mutate(&activity)
		activity.ID = id
		activity.CreatedAt = a.CreatedAt

		next := make([]domain.Activity, len(r.doc.Activities))
		copy(next, r.doc.Activities)
		next[i] = activity
		r.doc.Activities = next
		return &activity, r.persist()
	}
	return nil, domain.ErrActivityNotFound
}

func (r *ActivityRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := make([]domain.Activity, 0, len(r.doc.Activities))
	for _, a := range r.doc.Activities {
		if a.ID != id {
			next = append(next, a)
		}
	}
	if len(next) == len(r.doc.Activities) {
		return domain.ErrActivityNotFound
	}
	r.doc.Activities = next
	return r.persist()
}

func (r *ActivityRepository) ClearAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doc.Activities = []domain.Activity{}
	return r.persist()
}

func (r *ActivityRepository) Selection(ctx context.Context) (repository.ActivitySelection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.doc.Selection, nil
}

func (r *ActivityRepository) SetSelection(ctx context.Context, sel repository.ActivitySelection) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doc.Selection = sel
	return r.persist()
}

// Count reports the number of stored activities for health monitoring.
func (r *ActivityRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.doc.Activities)
}

// Name returns the collection name.
func (r *ActivityRepository) Name() string { return collectionActivities }

func (r *ActivityRepository) persist() error {
	if err := r.db.Put(collectionActivities, r.doc); err != nil {
		r.logger.Warn("activity collection write failed", zap.Error(err))
		return persistErr(collectionActivities, err)
	}
	return nil
}
