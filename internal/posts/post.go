package posts

import (
	"errors"
	"time"
)

var ErrPostNotFound = errors.New("post not found")

// BlogPost is the site-facing post shape, reshaped from the WordPress schema
type BlogPost struct {
	ID         int       `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Excerpt    string    `json:"excerpt"`
	Content    string    `json:"content"`
	Author     string    `json:"author"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Tags       []string  `json:"tags"`
	Featured   bool      `json:"featured"`
	Published  bool      `json:"published"`
	CoverImage string    `json:"cover_image,omitempty"`
}

// BlogPostMeta is the list view of a post: everything except the content
type BlogPostMeta struct {
	ID         int       `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Excerpt    string    `json:"excerpt"`
	Author     string    `json:"author"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Tags       []string  `json:"tags"`
	Featured   bool      `json:"featured"`
	Published  bool      `json:"published"`
	CoverImage string    `json:"cover_image,omitempty"`
}

func (p *BlogPost) Meta() BlogPostMeta {
	return BlogPostMeta{
		ID:         p.ID,
		Title:      p.Title,
		Slug:       p.Slug,
		Excerpt:    p.Excerpt,
		Author:     p.Author,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
		Tags:       p.Tags,
		Featured:   p.Featured,
		Published:  p.Published,
		CoverImage: p.CoverImage,
	}
}

type PaginatedBlogPosts struct {
	Posts      []BlogPostMeta `json:"posts"`
	Page       int            `json:"page"`
	Size       int            `json:"size"`
	Total      int            `json:"total"`
	TotalPages int            `json:"total_pages"`
	HasNext    bool           `json:"has_next"`
	HasPrev    bool           `json:"has_prev"`
}
