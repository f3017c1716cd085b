package community

import (
	"sort"

	"github.com/lifeboard/backend/domain"
)

// Filter selects which posts the feed shows.
type Filter string

const (
	FilterAll     Filter = "all"
	FilterMyPosts Filter = "my-posts"
	FilterPopular Filter = "popular"
)

// SortBy selects the feed ordering.
type SortBy string

const (
	SortNewest  SortBy = "newest"
	SortOldest  SortBy = "oldest"
	SortPopular SortBy = "popular"
)

// TagAll disables tag filtering.
const TagAll = "all"

// DefaultPopularMinLikes is the like count a post must exceed to rank as
// popular. Configurable because the threshold is a product decision.
const DefaultPopularMinLikes = 0

// Stats summarizes the community feed.
type Stats struct {
	Total         int `json:"total"`
	MyPosts       int `json:"my_posts"`
	TotalLikes    int `json:"total_likes"`
	TotalComments int `json:"total_comments"`
}

// View bundles the selector parameters for one feed derivation.
type View struct {
	Filter          Filter
	TagFilter       string
	SortBy          SortBy
	Author          string
	PopularMinLikes int
}

// Derive returns a display-ready feed: main filter, then tag filter, then
// sort. The input slice is never mutated.
func Derive(posts []domain.Post, view View) []domain.Post {
	filtered := make([]domain.Post, 0, len(posts))
	for _, p := range posts {
		switch view.Filter {
		case FilterMyPosts:
			if p.Author != view.Author {
				continue
			}
		case FilterPopular:
			if p.Likes <= view.PopularMinLikes {
				continue
			}
		}
		if view.TagFilter != "" && view.TagFilter != TagAll && !p.HasTag(view.TagFilter) {
			continue
		}
		filtered = append(filtered, p)
	}

	switch view.SortBy {
	case SortOldest:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.Before(filtered[j].CreatedAt)
		})
	case SortPopular:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Likes > filtered[j].Likes
		})
	default:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
		})
	}
	return filtered
}

// ComputeStats aggregates the feed for the community header tiles.
func ComputeStats(posts []domain.Post, author string) Stats {
	stats := Stats{Total: len(posts)}
	for _, p := range posts {
		if p.Author == author {
			stats.MyPosts++
		}
		stats.TotalLikes += p.Likes
		stats.TotalComments += p.Comments
	}
	return stats
}
