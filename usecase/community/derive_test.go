package community

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lifeboard/backend/domain"
)

func postBy(author, title string, created time.Time, likes int, tags ...string) domain.Post {
	if tags == nil {
		tags = []string{}
	}
	return domain.Post{
		ID:        domain.NewID(),
		Author:    author,
		Title:     title,
		Body:      "body",
		Tags:      tags,
		Likes:     likes,
		CreatedAt: created,
	}
}

func TestDeriveEmpty(t *testing.T) {
	assert.Empty(t, Derive(nil, View{Filter: FilterAll, SortBy: SortNewest}))
}

func TestDeriveMyPosts(t *testing.T) {
	now := time.Now()
	posts := []domain.Post{
		postBy("Ada", "mine", now, 0),
		postBy("Grace", "theirs", now, 0),
		postBy("Ada", "also mine", now, 0),
	}

	mine := Derive(posts, View{Filter: FilterMyPosts, Author: "Ada", SortBy: SortNewest})
	assert.Len(t, mine, 2)
	for _, p := range mine {
		assert.Equal(t, "Ada", p.Author)
	}
}

func TestDerivePopularThreshold(t *testing.T) {
	now := time.Now()
	posts := []domain.Post{
		postBy("Ada", "liked", now, 3),
		postBy("Ada", "unliked", now, 0),
	}

	popular := Derive(posts, View{Filter: FilterPopular, SortBy: SortNewest, PopularMinLikes: 0})
	if assert.Len(t, popular, 1) {
		assert.Equal(t, "liked", popular[0].Title)
	}

	// A raised threshold excludes mildly liked posts.
	assert.Empty(t, Derive(posts, View{Filter: FilterPopular, SortBy: SortNewest, PopularMinLikes: 20}))
}

func TestDeriveTagFilterCaseInsensitive(t *testing.T) {
	now := time.Now()
	posts := []domain.Post{
		postBy("Ada", "tagged", now, 0, "Fitness", "Achievement"),
		postBy("Ada", "other", now, 0, "Trading"),
	}

	got := Derive(posts, View{Filter: FilterAll, TagFilter: "fitness", SortBy: SortNewest})
	if assert.Len(t, got, 1) {
		assert.Equal(t, "tagged", got[0].Title)
	}

	assert.Len(t, Derive(posts, View{Filter: FilterAll, TagFilter: TagAll, SortBy: SortNewest}), 2)
}

func TestDeriveSorting(t *testing.T) {
	base := time.Now()
	old := postBy("Ada", "old", base.Add(-2*time.Hour), 10)
	fresh := postBy("Ada", "fresh", base, 1)
	middle := postBy("Ada", "middle", base.Add(-time.Hour), 5)
	posts := []domain.Post{old, fresh, middle}

	newest := Derive(posts, View{Filter: FilterAll, SortBy: SortNewest})
	assert.Equal(t, "fresh", newest[0].Title)

	oldest := Derive(posts, View{Filter: FilterAll, SortBy: SortOldest})
	assert.Equal(t, "old", oldest[0].Title)

	popular := Derive(posts, View{Filter: FilterAll, SortBy: SortPopular})
	assert.Equal(t, 10, popular[0].Likes)
	assert.Equal(t, 1, popular[2].Likes)
}

func TestLikeStacksWithoutDedup(t *testing.T) {
	p := postBy("Ada", "liked twice", time.Now(), 0)
	p.Like()
	p.Like()
	assert.Equal(t, 2, p.Likes)
}

func TestComputeStats(t *testing.T) {
	now := time.Now()
	posts := []domain.Post{
		postBy("Ada", "a", now, 3),
		postBy("Grace", "b", now, 2),
		postBy("Ada", "c", now, 0),
	}
	posts[1].Comments = 4

	stats := ComputeStats(posts, "Ada")
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.MyPosts)
	assert.Equal(t, 5, stats.TotalLikes)
	assert.Equal(t, 4, stats.TotalComments)

	assert.Zero(t, ComputeStats(nil, "Ada").Total)
}
