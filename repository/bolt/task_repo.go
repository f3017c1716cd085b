package bolt

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/lifeboard/backend/domain"
	"github.com/lifeboard/backend/internal/infrastructure/storage"
	"github.com/lifeboard/backend/repository"
)

type taskDocument struct {
	SchemaVersion int                      `json:"schema_version"`
	Tasks         []domain.Task            `json:"tasks"`
	Selection     repository.TaskSelection `json:"selection"`
}

// TaskRepository implements repository.TaskRepository on top of storage.DB.
type TaskRepository struct {
	db     *storage.DB
	logger *zap.Logger

	mu  sync.RWMutex
	doc taskDocument
}

func NewTaskRepository(db *storage.DB, logger *zap.Logger) (*TaskRepository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &TaskRepository{db: db, logger: logger}

	found, err := db.Get(collectionTasks, &r.doc)
	if err != nil {
		return nil, err
	}
	if !found {
		r.doc = taskDocument{
			SchemaVersion: schemaVersion,
			Tasks:         []domain.Task{},
			Selection:     repository.TaskSelection{Filter: "all", SortBy: "created_at"},
		}
	}
	if r.doc.Tasks == nil {
		r.doc.Tasks = []domain.Task{}
	}
	return r, nil
}

func (r *TaskRepository) List(ctx context.Context) ([]domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Task, len(r.doc.Tasks))
	copy(out, r.doc.Tasks)
	return out, nil
}

func (r *TaskRepository) Get(ctx context.Context, id string) (*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.doc.Tasks {
		if t.ID == id {
			task := t
			return &task, nil
		}
	}
	return nil, domain.ErrTaskNotFound
}

// Add prepends the task so the list stays newest-first.
func (r *TaskRepository) Add(ctx context.Context, task domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := make([]domain.Task, 0, len(r.doc.Tasks)+1)
	next = append(next, task)
	next = append(next, r.doc.Tasks...)
	r.doc.Tasks = next
	return r.persist()
}

func (r *TaskRepository) Update(ctx context.Context, id string, mutate func(*domain.Task)) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, t := range r.doc.Tasks {
		if t.ID != id {
			continue
		}
		task := t
		mutate(&task)
		task.ID = id
		task.CreatedAt = t.CreatedAt

		next := make([]domain.Task, len(r.doc.Tasks))
		copy(next, r.doc.Tasks)
		next[i] = task
		r.doc.Tasks = next
		return &task, r.persist()
	}
	return nil, domain.ErrTaskNotFound
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := make([]domain.Task, 0, len(r.doc.Tasks))
	for _, t := range r.doc.Tasks {
		if t.ID != id {
			next = append(next, t)
		}
	}
	if len(next) == len(r.doc.Tasks) {
		return domain.ErrTaskNotFound
	}
	r.doc.Tasks = next
	return r.persist()
}

func (r *TaskRepository) ClearAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doc.Tasks = []domain.Task{}
	return r.persist()
}

func (r *TaskRepository) Selection(ctx context.Context) (repository.TaskSelection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.doc.Selection, nil
}

func (r *TaskRepository) SetSelection(ctx context.Context, sel repository.TaskSelection) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doc.Selection = sel
	return r.persist()
}

// Count reports the number of stored tasks for health monitoring.
func (r *TaskRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.doc.Tasks)
}

// Name returns the collection name.
func (r *TaskRepository) Name() string { return collectionTasks }

func (r *TaskRepository) persist() error {
	if err := r.db.Put(collectionTasks, r.doc); err != nil {
		r.logger.Warn("task collection write failed", zap.Error(err))
		return persistErr(collectionTasks, err)
	}
	return nil
}
