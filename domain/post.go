package domain

import (
	"strings"
	"time"
)

// Post represents a community feed entry.
type Post struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Avatar    string    `json:"avatar,omitempty"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Tags      []string  `json:"tags"`
	Likes     int       `json:"likes"`
	Comments  int       `json:"comments"`
	CreatedAt time.Time `json:"created_at"`
}

// PostDraft carries the caller-supplied fields for a new post.
type PostDraft struct {
	Author string
	Avatar string
	Title  string
	Body   string
	Tags   []string
}

// NewPost builds a full post from a draft. Likes and comments start at zero;
// likes only ever grow through Like, there is no unlike.
func NewPost(draft PostDraft) Post {
	tags := draft.Tags
	if tags == nil {
		tags = []string{}
	}
	return Post{
		ID:        NewID(),
		Author:    draft.Author,
		Avatar:    draft.Avatar,
		Title:     draft.Title,
		Body:      draft.Body,
		Tags:      tags,
		Likes:     0,
		Comments:  0,
		CreatedAt: time.Now().UTC(),
	}
}

// Like increments the like counter. Repeat calls from the same actor stack;
// deduplication is a presentation concern.
func (p *Post) Like() {
	p.Likes++
}

// HasTag reports whether the post carries the tag, compared case-insensitively.
func (p Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
