package export

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeboard/backend/domain"
	"github.com/lifeboard/backend/internal/infrastructure/storage"
	"github.com/lifeboard/backend/repository/bolt"
)

func newTestUseCase(t *testing.T) *UseCase {
	t.Helper()

	db, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	tasks, err := bolt.NewTaskRepository(db, nil)
	require.NoError(t, err)
	activities, err := bolt.NewActivityRepository(db, nil)
	require.NoError(t, err)
	posts, err := bolt.NewPostRepository(db, nil)
	require.NoError(t, err)
	conversations, err := bolt.NewConversationRepository(db, nil)
	require.NoError(t, err)

	return New(tasks, activities, posts, conversations, nil)
}

func TestExportBundleSelection(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t)

	require.NoError(t, uc.tasks.Add(ctx, domain.NewTask(domain.TaskDraft{Title: "write docs"})))
	require.NoError(t, uc.activities.Add(ctx, domain.NewActivity(domain.ActivityDraft{Title: "run", Duration: 30})))

	bundle, err := uc.ExportBundle(ctx, Selection{Tasks: true})
	require.NoError(t, err)
	assert.Equal(t, BundleVersion, bundle.Version)
	assert.False(t, bundle.ExportDate.IsZero())
	assert.Len(t, bundle.Data.Tasks, 1)
	assert.Nil(t, bundle.Data.Activities)

	// Omitted collections stay out of the JSON entirely.
	raw, err := json.Marshal(bundle)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"activities"`)
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t)

	for _, title := range []string{"first", "second", "third"} {
		require.NoError(t, uc.tasks.Add(ctx, domain.NewTask(domain.TaskDraft{Title: title, Priority: domain.PriorityHigh})))
	}
	require.NoError(t, uc.posts.Add(ctx, domain.NewPost(domain.PostDraft{Author: "Ada", Title: "hello", Body: "world"})))

	bundle, err := uc.ExportBundle(ctx, All())
	require.NoError(t, err)

	// Wipe and restore into a fresh store.
	other := newTestUseCase(t)
	require.NoError(t, other.ImportBundle(ctx, bundle))

	restored, err := other.tasks.List(ctx)
	require.NoError(t, err)
	original, err := uc.tasks.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, original, restored)

	restoredPosts, err := other.posts.List(ctx)
	require.NoError(t, err)
	require.Len(t, restoredPosts, 1)
	assert.Equal(t, "Ada", restoredPosts[0].Author)
}

func TestImportReplacesExisting(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t)

	require.NoError(t, uc.tasks.Add(ctx, domain.NewTask(domain.TaskDraft{Title: "stale"})))

	fresh := domain.NewTask(domain.TaskDraft{Title: "fresh"})
	err := uc.ImportBundle(ctx, &Bundle{
		Version: BundleVersion,
		Data:    BundleData{Tasks: []domain.Task{fresh}},
	})
	require.NoError(t, err)

	tasks, err := uc.tasks.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "fresh", tasks[0].Title)
}

func TestRenderCSV(t *testing.T) {
	created := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	done := created.Add(time.Hour)
	tasks := []domain.Task{
		{ID: "1", Title: "plain task", CreatedAt: created},
		{ID: "2", Title: "task, with comma", Completed: true, CompletedAt: &done, CreatedAt: created},
	}
	activities := []domain.Activity{
		{ID: "3", Title: "gym", Category: domain.CategoryFitness, Date: created, Duration: 45},
	}

	out, err := RenderCSV(tasks, activities)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Type,Title,Status,Date", lines[0])
	assert.Equal(t, "Task,plain task,Pending,2026-03-10T09:00:00Z", lines[1])
	assert.Equal(t, `Task,"task, with comma",Completed,2026-03-10T09:00:00Z`, lines[2])
	assert.Equal(t, "Activity,gym,fitness,2026-03-10T09:00:00Z", lines[3])
}

func TestRenderCSVEmpty(t *testing.T) {
	out, err := RenderCSV(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Type,Title,Status,Date", strings.TrimSpace(string(out)))
}

func TestImportNilBundle(t *testing.T) {
	uc := newTestUseCase(t)
	err := uc.ImportBundle(context.Background(), nil)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}
