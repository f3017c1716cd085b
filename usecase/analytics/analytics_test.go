package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeboard/backend/domain"
)

var testNow = time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)

func newTask(title string, created time.Time, priority domain.Priority, completedAt *time.Time) domain.Task {
	t := domain.Task{
		ID:        domain.NewID(),
		Title:     title,
		Priority:  priority,
		Tags:      []string{},
		CreatedAt: created,
	}
	if completedAt != nil {
		t.Completed = true
		t.CompletedAt = completedAt
	}
	return t
}

func newActivity(title string, category domain.Category, date time.Time, minutes int) domain.Activity {
	return domain.Activity{
		ID:        domain.NewID(),
		Title:     title,
		Category:  category,
		Date:      date,
		Duration:  minutes,
		Tags:      []string{},
		CreatedAt: date,
	}
}

func TestWeeklyTaskStatsBuckets(t *testing.T) {
	yesterday := testNow.AddDate(0, 0, -1)
	tasks := []domain.Task{
		newTask("made today", testNow.Add(-2*time.Hour), domain.PriorityMedium, nil),
		newTask("done yesterday", testNow.AddDate(0, 0, -3), domain.PriorityMedium, &yesterday),
		newTask("ancient", testNow.AddDate(0, 0, -60), domain.PriorityMedium, nil),
	}

	stats := WeeklyTaskStats(tasks, 7, testNow)
	require.Len(t, stats, 7)

	// Oldest first, today last.
	assert.True(t, stats[0].Day.Before(stats[6].Day))
	assert.Equal(t, testNow.Format("Jan 2"), stats[6].Date)

	today := stats[6]
	assert.Equal(t, 1, today.Created)
	assert.Zero(t, today.Completed)

	yd := stats[5]
	assert.Equal(t, 1, yd.Completed)
	assert.Zero(t, yd.Created)
}

func TestWeeklyTaskStatsEmpty(t *testing.T) {
	stats := WeeklyTaskStats(nil, 30, testNow)
	require.Len(t, stats, 30)
	for _, s := range stats {
		assert.Zero(t, s.Created)
		assert.Zero(t, s.Completed)
	}
}

func TestCategoryBreakdownExcludesZero(t *testing.T) {
	activities := []domain.Activity{
		newActivity("a", domain.CategoryWork, testNow, 60),
		newActivity("b", domain.CategoryWork, testNow, 30),
		newActivity("c", domain.CategoryFitness, testNow, 45),
	}

	breakdown := CategoryBreakdown(activities)
	require.Len(t, breakdown, 2)
	assert.Equal(t, "Work", breakdown[0].Name)
	assert.Equal(t, 2, breakdown[0].Count)
	assert.InDelta(t, 1.5, breakdown[0].Hours, 0.0001)
	assert.Equal(t, "Fitness", breakdown[1].Name)
	assert.InDelta(t, 0.8, breakdown[1].Hours, 0.0001) // 45min rounds to 0.8h

	assert.Empty(t, CategoryBreakdown(nil))
}

func TestTimelineBuckets(t *testing.T) {
	activities := []domain.Activity{
		newActivity("today one", domain.CategoryWork, testNow.Add(-time.Hour), 90),
		newActivity("today two", domain.CategoryStudy, testNow.Add(-2*time.Hour), 30),
		newActivity("last week", domain.CategoryWork, testNow.AddDate(0, 0, -10), 60),
	}

	points := Timeline(activities, 7, testNow)
	require.Len(t, points, 7)

	today := points[6]
	assert.Equal(t, 2, today.Count)
	assert.InDelta(t, 2.0, today.Hours, 0.0001)

	for _, p := range points[:6] {
		assert.Zero(t, p.Count)
	}
}

func TestPriorityDistribution(t *testing.T) {
	done := testNow
	tasks := []domain.Task{
		newTask("h1", testNow, domain.PriorityHigh, nil),
		newTask("h2", testNow, domain.PriorityHigh, &done),
		newTask("l1", testNow, domain.PriorityLow, nil),
	}

	bands := PriorityDistribution(tasks)
	require.Len(t, bands, 2) // medium omitted

	assert.Equal(t, "High", bands[0].Name)
	assert.Equal(t, 2, bands[0].Total)
	assert.Equal(t, 1, bands[0].Completed)
	assert.Equal(t, 1, bands[0].Pending)

	assert.Equal(t, "Low", bands[1].Name)
	assert.Equal(t, 1, bands[1].Total)

	assert.Empty(t, PriorityDistribution(nil))
}

func TestRecentEventsMergesAndTruncates(t *testing.T) {
	doneAt := testNow.Add(-30 * time.Minute)
	tasks := []domain.Task{
		newTask("shipped", testNow.AddDate(0, 0, -2), domain.PriorityHigh, &doneAt),
		newTask("open", testNow, domain.PriorityLow, nil), // never completed, excluded
	}
	activities := []domain.Activity{
		newActivity("gym", domain.CategoryFitness, testNow.Add(-10*time.Minute), 45),
		newActivity("old run", domain.CategoryFitness, testNow.AddDate(0, 0, -5), 30),
	}

	events := RecentEvents(tasks, activities, 5)
	require.Len(t, events, 3)
	assert.Equal(t, "gym", events[0].Title)
	assert.Equal(t, "shipped", events[1].Title)
	assert.Equal(t, "old run", events[2].Title)

	assert.Len(t, RecentEvents(tasks, activities, 2), 2)
	assert.Empty(t, RecentEvents(nil, nil, 5))
}

func TestSummaryKPIs(t *testing.T) {
	doneAt := testNow.Add(-time.Hour)
	tasks := []domain.Task{
		newTask("done today", testNow.Add(-2*time.Hour), domain.PriorityMedium, &doneAt),
		newTask("open today", testNow.Add(-time.Hour), domain.PriorityMedium, nil),
		newTask("last month", testNow.AddDate(0, 0, -20), domain.PriorityMedium, nil),
	}
	activities := []domain.Activity{
		newActivity("a", domain.CategoryWork, testNow.Add(-time.Hour), 60),
		newActivity("b", domain.CategoryWork, testNow.Add(-2*time.Hour), 30),
		newActivity("c", domain.CategoryFitness, testNow.Add(-3*time.Hour), 30),
	}

	today := SummaryKPIs(tasks, activities, PeriodToday, testNow)
	assert.Equal(t, 2, today.TotalTasks)
	assert.Equal(t, 1, today.CompletedTasks)
	assert.Equal(t, 50, today.CompletionRate)
	assert.Equal(t, 3, today.TotalActivities)
	assert.InDelta(t, 2.0, today.TotalHours, 0.0001)
	assert.Equal(t, "Work", today.MostActiveCategory)

	all := SummaryKPIs(tasks, activities, PeriodAll, testNow)
	assert.Equal(t, 3, all.TotalTasks)
	assert.Equal(t, 33, all.CompletionRate)
}

func TestSummaryKPIsEmpty(t *testing.T) {
	summary := SummaryKPIs(nil, nil, PeriodWeek, testNow)
	assert.Zero(t, summary.TotalTasks)
	assert.Zero(t, summary.CompletionRate)
	assert.Equal(t, "None", summary.MostActiveCategory)
}

func TestSummaryKPIsCategoryTieBreak(t *testing.T) {
	activities := []domain.Activity{
		newActivity("s", domain.CategoryStudy, testNow, 10),
		newActivity("w", domain.CategoryWork, testNow, 10),
	}
	// work and study tie; work wins by declaration order.
	summary := SummaryKPIs(nil, activities, PeriodAll, testNow)
	assert.Equal(t, "Work", summary.MostActiveCategory)
}
