package domain

import (
	"math"
	"time"
)

// Category buckets activities for filtering and stats.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryStudy    Category = "study"
	CategoryFitness  Category = "fitness"
	CategoryTrading  Category = "trading"
	CategoryPersonal Category = "personal"
)

// Categories lists every category in display order. Stats zero-fill over this
// slice so callers always see all five buckets.
func Categories() []Category {
	return []Category{CategoryWork, CategoryStudy, CategoryFitness, CategoryTrading, CategoryPersonal}
}

// Valid reports whether the category is one of the known buckets.
func (c Category) Valid() bool {
	switch c {
	case CategoryWork, CategoryStudy, CategoryFitness, CategoryTrading, CategoryPersonal:
		return true
	}
	return false
}

// Activity represents a logged block of time. Date records when the activity
// happened, which is distinct from when the record was created.
type Activity struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    Category  `json:"category"`
	Date        time.Time `json:"date"`
	Duration    int       `json:"duration"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
}

// HoursFromMinutes converts a minute total to hours rounded half-up to one
// decimal place, the rule used by every duration display in the app.
func HoursFromMinutes(minutes int) float64 {
	return math.Round(float64(minutes)/60*10) / 10
}

// ActivityDraft carries the caller-supplied fields for a new activity.
type ActivityDraft struct {
	Title       string
	Description string
	Category    Category
	Date        *time.Time
	Duration    int
	Tags        []string
}

// NewActivity builds a full activity from a draft, filling defaults.
func NewActivity(draft ActivityDraft) Activity {
	category := draft.Category
	if !category.Valid() {
		category = CategoryPersonal
	}
	date := time.Now().UTC()
	if draft.Date != nil {
		date = *draft.Date
	}
	duration := draft.Duration
	if duration < 0 {
		duration = 0
	}
	tags := draft.Tags
	if tags == nil {
		tags = []string{}
	}
	return Activity{
		ID:          NewID(),
		Title:       draft.Title,
		Description: draft.Description,
		Category:    category,
		Date:        date,
		Duration:    duration,
		Tags:        tags,
		CreatedAt:   time.Now().UTC(),
	}
}
