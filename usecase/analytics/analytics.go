// Package analytics computes chart-ready aggregations over the task and
// activity collections. Every function is pure: inputs are never mutated and
// "now" is an explicit parameter so buckets are reproducible in tests.
package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/lifeboard/backend/domain"
)

// Period selects the time window for summary KPIs.
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodAll   Period = "all"
)

// DayStat is one calendar-day bucket of task churn.
type DayStat struct {
	Date      string    `json:"date"`
	Completed int       `json:"completed"`
	Created   int       `json:"created"`
	Day       time.Time `json:"day"`
}

// CategorySlice is one slice of the category chart.
type CategorySlice struct {
	Name  string  `json:"name"`
	Count int     `json:"count"`
	Hours float64 `json:"hours"`
}

// TimelinePoint is one calendar-day bucket of activity volume.
type TimelinePoint struct {
	Date  string    `json:"date"`
	Hours float64   `json:"hours"`
	Count int       `json:"count"`
	Day   time.Time `json:"day"`
}

// PriorityBand is one bar of the priority distribution chart.
type PriorityBand struct {
	Name      string `json:"name"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
	Pending   int    `json:"pending"`
}

// Event is one row of the recent-events feed, merging completed tasks and
// logged activities.
type Event struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Title     string          `json:"title"`
	Category  domain.Category `json:"category,omitempty"`
	Duration  int             `json:"duration,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// Summary bundles the KPI tiles for one period.
type Summary struct {
	CompletedTasks     int     `json:"completed_tasks"`
	TotalTasks         int     `json:"total_tasks"`
	TotalActivities    int     `json:"total_activities"`
	TotalHours         float64 `json:"total_hours"`
	MostActiveCategory string  `json:"most_active_category"`
	CompletionRate     int     `json:"completion_rate"`
}

const dateLabel = "Jan 2"

// dayStart truncates to midnight in t's location.
func dayStart(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func inDay(t, day time.Time) bool {
	next := day.AddDate(0, 0, 1)
	local := t.In(day.Location())
	return !local.Before(day) && local.Before(next)
}

// WeeklyTaskStats buckets task creations and completions per calendar day for
// the last days days, oldest first with today last.
func WeeklyTaskStats(tasks []domain.Task, days int, now time.Time) []DayStat {
	if days <= 0 {
		days = 7
	}
	stats := make([]DayStat, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := dayStart(now).AddDate(0, 0, -i)
		stat := DayStat{Date: day.Format(dateLabel), Day: day}
		for _, t := range tasks {
			if t.CompletedAt != nil && inDay(*t.CompletedAt, day) {
				stat.Completed++
			}
			if inDay(t.CreatedAt, day) {
				stat.Created++
			}
		}
		stats = append(stats, stat)
	}
	return stats
}

// CategoryBreakdown sums activity count and hours per category. Categories
// with no activities are left out to keep charts uncluttered; the zero-filled
// companion lives in the activity stats.
func CategoryBreakdown(activities []domain.Activity) []CategorySlice {
	counts := make(map[domain.Category]int)
	minutes := make(map[domain.Category]int)
	for _, a := range activities {
		if !a.Category.Valid() {
			continue
		}
		counts[a.Category]++
		minutes[a.Category] += a.Duration
	}

	out := make([]CategorySlice, 0, len(counts))
	for _, c := range domain.Categories() {
		if counts[c] == 0 {
			continue
		}
		out = append(out, CategorySlice{
			Name:  titleCase(string(c)),
			Count: counts[c],
			Hours: domain.HoursFromMinutes(minutes[c]),
		})
	}
	return out
}

// Timeline buckets activity volume per calendar day for the last days days,
// oldest first with today last.
func Timeline(activities []domain.Activity, days int, now time.Time) []TimelinePoint {
	if days <= 0 {
		days = 7
	}
	points := make([]TimelinePoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := dayStart(now).AddDate(0, 0, -i)
		point := TimelinePoint{Date: day.Format(dateLabel), Day: day}
		totalMinutes := 0
		for _, a := range activities {
			if inDay(a.Date, day) {
				point.Count++
				totalMinutes += a.Duration
			}
		}
		point.Hours = domain.HoursFromMinutes(totalMinutes)
		points = append(points, point)
	}
	return points
}

// PriorityDistribution counts tasks per priority level, high first. Levels
// with no tasks are omitted.
func PriorityDistribution(tasks []domain.Task) []PriorityBand {
	levels := []domain.Priority{domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow}
	out := make([]PriorityBand, 0, len(levels))
	for _, level := range levels {
		band := PriorityBand{Name: titleCase(string(level))}
		for _, t := range tasks {
			if t.Priority != level {
				continue
			}
			band.Total++
			if t.Completed {
				band.Completed++
			}
		}
		if band.Total == 0 {
			continue
		}
		band.Pending = band.Total - band.Completed
		out = append(out, band)
	}
	return out
}

// RecentEvents merges completed tasks (stamped at completion) and activities
// (stamped at occurrence) into one feed, newest first, truncated to limit.
func RecentEvents(tasks []domain.Task, activities []domain.Activity, limit int) []Event {
	if limit <= 0 {
		limit = 5
	}
	events := make([]Event, 0, len(tasks)+len(activities))
	for _, t := range tasks {
		if t.CompletedAt == nil {
			continue
		}
		events = append(events, Event{
			ID:        "task-" + t.ID,
			Type:      "task",
			Title:     t.Title,
			Timestamp: *t.CompletedAt,
		})
	}
	for _, a := range activities {
		events = append(events, Event{
			ID:        "activity-" + a.ID,
			Type:      "activity",
			Title:     a.Title,
			Category:  a.Category,
			Duration:  a.Duration,
			Timestamp: a.Date,
		})
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.After(events[j].Timestamp)
	})
	if len(events) > limit {
		events = events[:limit]
	}
	return events
}

// SummaryKPIs restricts both collections to the period (tasks by creation,
// activities by occurrence) and computes the dashboard tiles. "today" starts
// at local midnight; "week" and "month" are rolling windows.
func SummaryKPIs(tasks []domain.Task, activities []domain.Activity, period Period, now time.Time) Summary {
	var start time.Time
	switch period {
	case PeriodToday:
		start = dayStart(now)
	case PeriodWeek:
		start = now.AddDate(0, 0, -7)
	case PeriodMonth:
		start = now.AddDate(0, 0, -30)
	default:
		start = time.Time{}
	}

	summary := Summary{MostActiveCategory: "None"}
	for _, t := range tasks {
		if t.CreatedAt.Before(start) {
			continue
		}
		summary.TotalTasks++
		if t.Completed {
			summary.CompletedTasks++
		}
	}

	totalMinutes := 0
	counts := make(map[domain.Category]int)
	for _, a := range activities {
		if a.Date.Before(start) {
			continue
		}
		summary.TotalActivities++
		totalMinutes += a.Duration
		counts[a.Category]++
	}
	summary.TotalHours = domain.HoursFromMinutes(totalMinutes)

	// Ties break by category declaration order, the first one encountered.
	best := 0
	for _, c := range domain.Categories() {
		if counts[c] > best {
			best = counts[c]
			summary.MostActiveCategory = titleCase(string(c))
		}
	}

	if summary.TotalTasks > 0 {
		summary.CompletionRate = roundPercent(summary.CompletedTasks, summary.TotalTasks)
	}
	return summary
}

func roundPercent(part, whole int) int {
	return int(float64(part)/float64(whole)*100 + 0.5)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
