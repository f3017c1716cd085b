package activity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lifeboard/backend/domain"
)

func activityAt(title string, category domain.Category, date time.Time, minutes int) domain.Activity {
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

func TestDeriveEmpty(t *testing.T) {
	assert.Empty(t, Derive(nil, FilterAll, SortDate))
	assert.Empty(t, Derive([]domain.Activity{}, Filter(domain.CategoryWork), SortDuration))
}

func TestDeriveCategoryFilter(t *testing.T) {
	now := time.Now()
	all := []domain.Activity{
		activityAt("standup", domain.CategoryWork, now, 15),
		activityAt("run", domain.CategoryFitness, now, 45),
		activityAt("review", domain.CategoryWork, now, 30),
	}

	work := Derive(all, Filter(domain.CategoryWork), SortDate)
	assert.Len(t, work, 2)
	for _, a := range work {
		assert.Equal(t, domain.CategoryWork, a.Category)
	}

	assert.Len(t, Derive(all, FilterAll, SortDate), 3)
}

func TestDeriveSorting(t *testing.T) {
	base := time.Now()
	a := activityAt("oldest", domain.CategoryWork, base.Add(-2*time.Hour), 10)
	b := activityAt("newest", domain.CategoryStudy, base, 30)
	c := activityAt("middle", domain.CategoryFitness, base.Add(-time.Hour), 20)
	all := []domain.Activity{a, b, c}

	byDate := Derive(all, FilterAll, SortDate)
	assert.Equal(t, "newest", byDate[0].Title)
	assert.Equal(t, "oldest", byDate[2].Title)

	byCategory := Derive(all, FilterAll, SortCategory)
	assert.Equal(t, domain.CategoryFitness, byCategory[0].Category)
	assert.Equal(t, domain.CategoryStudy, byCategory[1].Category)
	assert.Equal(t, domain.CategoryWork, byCategory[2].Category)

	byDuration := Derive(all, FilterAll, SortDuration)
	assert.Equal(t, 30, byDuration[0].Duration)
	assert.Equal(t, 10, byDuration[2].Duration)
}

func TestComputeStatsByCategoryZeroFilled(t *testing.T) {
	now := time.Now()
	all := []domain.Activity{
		activityAt("a", domain.CategoryWork, now, 60),
		activityAt("b", domain.CategoryWork, now, 30),
		activityAt("c", domain.CategoryFitness, now, 45),
	}

	stats := ComputeStats(all, now)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, map[domain.Category]int{
		domain.CategoryWork:     2,
		domain.CategoryStudy:    0,
		domain.CategoryFitness:  1,
		domain.CategoryTrading:  0,
		domain.CategoryPersonal: 0,
	}, stats.ByCategory)
	assert.InDelta(t, 2.3, stats.TotalHours, 0.0001) // 135min rounds to 2.3h
}

func TestComputeStatsWindows(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	all := []domain.Activity{
		activityAt("this morning", domain.CategoryWork, now.Add(-3*time.Hour), 30),
		activityAt("yesterday", domain.CategoryWork, now.Add(-24*time.Hour), 30),
		activityAt("six days ago", domain.CategoryStudy, now.Add(-6*24*time.Hour), 30),
		activityAt("eight days ago", domain.CategoryStudy, now.Add(-8*24*time.Hour), 30),
	}

	stats := ComputeStats(all, now)
	assert.Equal(t, 1, stats.Today)
	assert.Equal(t, 3, stats.Week)
	assert.Equal(t, 4, stats.Total)
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil, time.Now())
	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.TotalHours)
	assert.Len(t, stats.ByCategory, 5)
}

func TestRecentLimits(t *testing.T) {
	base := time.Now()
	var all []domain.Activity
	for i := 0; i < 8; i++ {
		all = append(all, activityAt("a", domain.CategoryWork, base.Add(-time.Duration(i)*time.Hour), 10))
	}

	recent := Recent(all, 0) // default limit
	assert.Len(t, recent, 5)
	assert.Equal(t, base.Unix(), recent[0].Date.Unix())

	assert.Len(t, Recent(all, 3), 3)
	assert.Len(t, Recent(all[:2], 5), 2)
}

func TestHoursFromMinutesRounding(t *testing.T) {
	assert.InDelta(t, 2.3, domain.HoursFromMinutes(135), 0.0001)
	assert.InDelta(t, 1.0, domain.HoursFromMinutes(60), 0.0001)
	assert.InDelta(t, 0.5, domain.HoursFromMinutes(30), 0.0001)
	assert.InDelta(t, 0.1, domain.HoursFromMinutes(3), 0.0001) // 0.05h rounds up
	assert.Zero(t, domain.HoursFromMinutes(0))
}
