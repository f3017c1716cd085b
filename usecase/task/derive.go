package task

import (
	"sort"
	"time"

	"github.com/lifeboard/backend/domain"
)

// Filter selects which tasks a list view shows.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// SortBy selects the ordering of a task list view.
type SortBy string

const (
	SortCreatedAt SortBy = "created_at"
	SortDueDate   SortBy = "due_date"
	SortPriority  SortBy = "priority"
)

// Stats summarizes a task collection for dashboard tiles.
type Stats struct {
	Total        int `json:"total"`
	Completed    int `json:"completed"`
	Active       int `json:"active"`
	HighPriority int `json:"high_priority"`
	Overdue      int `json:"overdue"`
}

// Derive returns a display-ready view of tasks: filtered, then sorted. The
// input slice is never mutated.
func Derive(tasks []domain.Task, filter Filter, sortBy SortBy) []domain.Task {
	filtered := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		switch filter {
		case FilterActive:
			if t.Completed {
				continue
			}
		case FilterCompleted:
			if !t.Completed {
				continue
			}
		}
		filtered = append(filtered, t)
	}

	switch sortBy {
	case SortDueDate:
		// Ascending by due date, tasks without one always last.
		sort.SliceStable(filtered, func(i, j int) bool {
			a, b := filtered[i].DueDate, filtered[j].DueDate
			if a == nil {
				return false
			}
			if b == nil {
				return true
			}
			return a.Before(*b)
		})
	case SortPriority:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Priority.Rank() < filtered[j].Priority.Rank()
		})
	default:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
		})
	}
	return filtered
}

// ComputeStats aggregates the collection. Overdue counts open tasks whose due
// date is strictly before now.
func ComputeStats(tasks []domain.Task, now time.Time) Stats {
	stats := Stats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			stats.Completed++
			continue
		}
		if t.Priority == domain.PriorityHigh {
			stats.HighPriority++
		}
		if t.IsOverdue(now) {
			stats.Overdue++
		}
	}
	stats.Active = stats.Total - stats.Completed
	return stats
}
