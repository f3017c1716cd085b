package bolt

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeboard/backend/domain"
	"github.com/lifeboard/backend/internal/infrastructure/storage"
	"github.com/lifeboard/backend/repository"
)

func openTestDB(t *testing.T) (*storage.DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := storage.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, path
}

func TestTaskRepositoryStartsEmpty(t *testing.T) {
	db, _ := openTestDB(t)
	repo, err := NewTaskRepository(db, nil)
	require.NoError(t, err)

	tasks, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
	assert.Zero(t, repo.Count())

	sel, err := repo.Selection(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "all", sel.Filter)
	assert.Equal(t, "created_at", sel.SortBy)
}

func TestTaskRepositoryAddPrepends(t *testing.T) {
	db, _ := openTestDB(t)
	repo, err := NewTaskRepository(db, nil)
	require.NoError(t, err)
	ctx := context.Background()

	first := domain.NewTask(domain.TaskDraft{Title: "first"})
	second := domain.NewTask(domain.TaskDraft{Title: "second"})
	require.NoError(t, repo.Add(ctx, first))
	require.NoError(t, repo.Add(ctx, second))

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "second", tasks[0].Title)
	assert.Equal(t, "first", tasks[1].Title)
}

func TestTaskRepositorySurvivesReopen(t *testing.T) {
	db, path := openTestDB(t)
	repo, err := NewTaskRepository(db, nil)
	require.NoError(t, err)
	ctx := context.Background()

	task := domain.NewTask(domain.TaskDraft{Title: "durable", Priority: domain.PriorityHigh})
	require.NoError(t, repo.Add(ctx, task))
	require.NoError(t, repo.SetSelection(ctx, repository.TaskSelection{Filter: "active", SortBy: "priority"}))
	require.NoError(t, db.Close())

	reopened, err := storage.Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	repo2, err := NewTaskRepository(reopened, nil)
	require.NoError(t, err)

	tasks, err := repo2.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, task.ID, tasks[0].ID)
	assert.Equal(t, "durable", tasks[0].Title)
	assert.Equal(t, domain.PriorityHigh, tasks[0].Priority)

	sel, err := repo2.Selection(ctx)
	require.NoError(t, err)
	assert.Equal(t, "active", sel.Filter)
	assert.Equal(t, "priority", sel.SortBy)
}

func TestTaskRepositoryUpdatePreservesIdentity(t *testing.T) {
	db, _ := openTestDB(t)
	repo, err := NewTaskRepository(db, nil)
	require.NoError(t, err)
	ctx := context.Background()

	task := domain.NewTask(domain.TaskDraft{Title: "before"})
	require.NoError(t, repo.Add(ctx, task))

	updated, err := repo.Update(ctx, task.ID, func(t *domain.Task) {
		t.Title = "after"
		t.ID = "hijacked"
	})
	require.NoError(t, err)
	assert.Equal(t, task.ID, updated.ID)
	assert.Equal(t, "after", updated.Title)
	assert.True(t, task.CreatedAt.Equal(updated.CreatedAt))
}

func TestTaskRepositoryUpdateMissing(t *testing.T) {
	db, _ := openTestDB(t)
	repo, err := NewTaskRepository(db, nil)
	require.NoError(t, err)

	_, err = repo.Update(context.Background(), "absent", func(t *domain.Task) {})
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
}

func TestTaskRepositoryDeleteMissing(t *testing.T) {
	db, _ := openTestDB(t)
	repo, err := NewTaskRepository(db, nil)
	require.NoError(t, err)
	ctx := context.Background()

	task := domain.NewTask(domain.TaskDraft{Title: "gone soon"})
	require.NoError(t, repo.Add(ctx, task))
	require.NoError(t, repo.Delete(ctx, task.ID))

	err = repo.Delete(ctx, task.ID)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskRepositoryClearAll(t *testing.T) {
	db, _ := openTestDB(t)
	repo, err := NewTaskRepository(db, nil)
	require.NoError(t, err)
	ctx := context.Background()

	for _, title := range []string{"one", "two", "three"} {
		require.NoError(t, repo.Add(ctx, domain.NewTask(domain.TaskDraft{Title: title})))
	}
	require.NoError(t, repo.ClearAll(ctx))

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
	assert.Zero(t, repo.Count())
}

func TestTaskRepositoryListReturnsCopy(t *testing.T) {
	db, _ := openTestDB(t)
	repo, err := NewTaskRepository(db, nil)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, domain.NewTask(domain.TaskDraft{Title: "original"})))

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	tasks[0].Title = "mutated"

	again, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "original", again[0].Title)
}
