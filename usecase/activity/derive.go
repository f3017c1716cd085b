package activity

import (
	"sort"
	"time"

	"github.com/lifeboard/backend/domain"
)

// Filter is "all" or one of the category values.
type Filter string

const FilterAll Filter = "all"

// SortBy selects the ordering of an activity list view.
type SortBy string

const (
	SortDate     SortBy = "date"
	SortCategory SortBy = "category"
	SortDuration SortBy = "duration"
)

// Stats summarizes the activity collection. Today counts activities on the
// current calendar day; Week uses a rolling seven-day window. The two
// windowing rules differ on purpose, matching how the dashboard presents
// "today" versus "this week".
type Stats struct {
	Total      int                     `json:"total"`
	Today      int                     `json:"today"`
	Week       int                     `json:"week"`
	TotalHours float64                 `json:"total_hours"`
	ByCategory map[domain.Category]int `json:"by_category"`
}

// Derive returns a display-ready view of activities: filtered by category,
// then sorted. The input slice is never mutated.
func Derive(activities []domain.Activity, filter Filter, sortBy SortBy) []domain.Activity {
	filtered := make([]domain.Activity, 0, len(activities))
	for _, a := range activities {
		if filter != "" && filter != FilterAll && a.Category != domain.Category(filter) {
			continue
		}
		filtered = append(filtered, a)
	}

	switch sortBy {
	case SortCategory:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Category < filtered[j].Category
		})
	case SortDuration:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Duration > filtered[j].Duration
		})
	default:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Date.After(filtered[j].Date)
		})
	}
	return filtered
}

// ComputeStats aggregates the collection. ByCategory is zero-filled across
// all categories so stat tiles always render every bucket.
func ComputeStats(activities []domain.Activity, now time.Time) Stats {
	stats := Stats{
		Total:      len(activities),
		ByCategory: make(map[domain.Category]int, len(domain.Categories())),
	}
	for _, c := range domain.Categories() {
		stats.ByCategory[c] = 0
	}

	year, month, day := now.Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	weekAgo := now.AddDate(0, 0, -7)

	totalMinutes := 0
	for _, a := range activities {
		if _, ok := stats.ByCategory[a.Category]; ok {
			stats.ByCategory[a.Category]++
		}
		totalMinutes += a.Duration

		local := a.Date.In(now.Location())
		if local.Year() == today.Year() && local.YearDay() == today.YearDay() {
			stats.Today++
		}
		if !a.Date.Before(weekAgo) {
			stats.Week++
		}
	}
	stats.TotalHours = domain.HoursFromMinutes(totalMinutes)
	return stats
}

// Recent returns the latest activities by occurrence date, newest first.
func Recent(activities []domain.Activity, limit int) []domain.Activity {
	if limit <= 0 {
		limit = 5
	}
	sorted := Derive(activities, FilterAll, SortDate)
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
