package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lifeboard/backend/domain"
)

func taskAt(title string, created time.Time, mutate func(*domain.Task)) domain.Task {
	t := domain.Task{
		ID:        domain.NewID(),
		Title:     title,
		Priority:  domain.PriorityMedium,
		Tags:      []string{},
		CreatedAt: created,
	}
	if mutate != nil {
		mutate(&t)
	}
	return t
}

func TestDeriveEmpty(t *testing.T) {
	assert.Empty(t, Derive(nil, FilterAll, SortCreatedAt))
	assert.Empty(t, Derive([]domain.Task{}, FilterCompleted, SortPriority))
}

func TestDeriveFilters(t *testing.T) {
	now := time.Now()
	done := taskAt("done", now, func(task *domain.Task) {
		task.Toggle(now)
	})
	open := taskAt("open", now.Add(time.Minute), nil)
	tasks := []domain.Task{done, open}

	assert.Len(t, Derive(tasks, FilterAll, SortCreatedAt), 2)

	active := Derive(tasks, FilterActive, SortCreatedAt)
	if assert.Len(t, active, 1) {
		assert.Equal(t, "open", active[0].Title)
	}

	completed := Derive(tasks, FilterCompleted, SortCreatedAt)
	if assert.Len(t, completed, 1) {
		assert.Equal(t, "done", completed[0].Title)
	}
}

func TestDeriveSortCreatedAtDescending(t *testing.T) {
	base := time.Now()
	oldest := taskAt("oldest", base.Add(-2*time.Hour), nil)
	newest := taskAt("newest", base, nil)
	middle := taskAt("middle", base.Add(-time.Hour), nil)

	got := Derive([]domain.Task{oldest, newest, middle}, FilterAll, SortCreatedAt)
	assert.Equal(t, []string{"newest", "middle", "oldest"}, titles(got))
}

func TestDeriveSortDueDateNilLast(t *testing.T) {
	base := time.Now()
	soon := base.Add(time.Hour)
	later := base.Add(48 * time.Hour)

	noDue := taskAt("no due", base, nil)
	dueSoon := taskAt("due soon", base, func(task *domain.Task) { task.DueDate = &soon })
	dueLater := taskAt("due later", base, func(task *domain.Task) { task.DueDate = &later })

	got := Derive([]domain.Task{noDue, dueLater, dueSoon}, FilterAll, SortDueDate)
	assert.Equal(t, []string{"due soon", "due later", "no due"}, titles(got))

	// Order of the placement is independent of input order.
	got = Derive([]domain.Task{dueLater, noDue, dueSoon}, FilterAll, SortDueDate)
	assert.Equal(t, []string{"due soon", "due later", "no due"}, titles(got))
}

func TestDeriveSortPriorityHighFirst(t *testing.T) {
	base := time.Now()
	low := taskAt("low", base, func(task *domain.Task) { task.Priority = domain.PriorityLow })
	high := taskAt("high", base, func(task *domain.Task) { task.Priority = domain.PriorityHigh })
	medium := taskAt("medium", base, func(task *domain.Task) { task.Priority = domain.PriorityMedium })

	got := Derive([]domain.Task{low, high, medium}, FilterAll, SortPriority)
	assert.Equal(t, []string{"high", "medium", "low"}, titles(got))
}

func TestComputeStats(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tasks := []domain.Task{
		taskAt("done", now, func(task *domain.Task) { task.Toggle(now) }),
		taskAt("urgent", now, func(task *domain.Task) { task.Priority = domain.PriorityHigh }),
		taskAt("late", now, func(task *domain.Task) { task.DueDate = &past }),
		taskAt("upcoming", now, func(task *domain.Task) { task.DueDate = &future }),
	}

	stats := ComputeStats(tasks, now)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 3, stats.Active)
	assert.Equal(t, 1, stats.HighPriority)
	assert.Equal(t, 1, stats.Overdue)
	assert.Equal(t, stats.Total, stats.Completed+stats.Active)
}

func TestComputeStatsCompletedNeverOverdue(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	done := taskAt("done late", now, func(task *domain.Task) {
		task.DueDate = &past
		task.Toggle(now)
	})

	stats := ComputeStats([]domain.Task{done}, now)
	assert.Zero(t, stats.Overdue)
	assert.Equal(t, 1, stats.Completed)
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil, time.Now())
	assert.Zero(t, stats.Total)
	assert.Equal(t, stats.Total, stats.Completed+stats.Active)
}

func TestToggleInvariant(t *testing.T) {
	now := time.Now()
	task := taskAt("flip", now, nil)

	task.Toggle(now)
	assert.True(t, task.Completed)
	if assert.NotNil(t, task.CompletedAt) {
		assert.Equal(t, now, *task.CompletedAt)
	}

	task.Toggle(now.Add(time.Minute))
	assert.False(t, task.Completed)
	assert.Nil(t, task.CompletedAt)
}

func titles(tasks []domain.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}
