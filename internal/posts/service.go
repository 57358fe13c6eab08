package posts

import (
	"context"
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/nmilenkovic/nmilenkovic.com/internal/telemetry/metrics"
	"github.com/nmilenkovic/nmilenkovic.com/internal/telemetry/tracing"
	"github.com/nmilenkovic/nmilenkovic.com/internal/wordpress"
	"github.com/nmilenkovic/nmilenkovic.com/pkg"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type postsFetcher interface {
	FetchPosts(ctx context.Context) ([]wordpress.Post, error)
}

type Service struct {
	fetcher       postsFetcher
	defaultAuthor string
	metrics       *metrics.Manager
}

func NewService(
	fetcher postsFetcher,
	defaultAuthor string,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		fetcher:       fetcher,
		defaultAuthor: defaultAuthor,
		metrics:       metricsManager,
	}
}

// All returns all posts in the site schema, newest first. When the upstream
// stays unreachable after all retries, the static fallback posts are
// returned instead, so callers always get content.
func (s *Service) All(ctx context.Context) []BlogPost {
	ctx, span := tracing.GlobalTracer.Start(ctx, "postsService.all")
	defer span.End()

	wpPosts, err := s.fetcher.FetchPosts(ctx)
	if err != nil {
		log.Errorf("fetch wordpress posts, serving fallback posts: %s", err)
		span.SetAttributes(attribute.Bool("posts.fallback", true))
		if s.metrics != nil {
			s.metrics.CounterFallbacksServed.Inc()
		}
		return FallbackPosts()
	}

	span.SetAttributes(attribute.Bool("posts.fallback", false))
	span.SetAttributes(attribute.Int("posts.count", len(wpPosts)))

	blogPosts := make([]BlogPost, 0, len(wpPosts))
	for i := range wpPosts {
		blogPosts = append(blogPosts, s.transformPost(&wpPosts[i]))
	}

	sort.SliceStable(blogPosts, func(i, j int) bool {
		return blogPosts[i].CreatedAt.After(blogPosts[j].CreatedAt)
	})

	return blogPosts
}

// Page slices the full post list, page numbering starts at 1.
// A page past the end yields an empty posts list with correct totals.
func (s *Service) Page(ctx context.Context, page, size int) PaginatedBlogPosts {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 1
	}

	allPosts := s.All(ctx)
	total := len(allPosts)

	totalPages := total / size
	if total%size != 0 {
		totalPages++
	}

	// (page-1)*size can overflow for absurd page numbers,
	// only multiply when the result is known to fit in the list
	from := total
	if page-1 <= total/size {
		from = (page - 1) * size
	}
	to := from + size
	if to > total || to < 0 {
		to = total
	}

	pagePosts := make([]BlogPostMeta, 0, to-from)
	for i := from; i < to; i++ {
		pagePosts = append(pagePosts, allPosts[i].Meta())
	}

	return PaginatedBlogPosts{
		Posts:      pagePosts,
		Page:       page,
		Size:       size,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1 && total > 0,
	}
}

// BySlug returns the full post for the given slug
func (s *Service) BySlug(ctx context.Context, slug string) (BlogPost, error) {
	for _, post := range s.All(ctx) {
		if post.Slug == slug {
			return post, nil
		}
	}
	return BlogPost{}, fmt.Errorf("%w: %s", ErrPostNotFound, slug)
}

// ByTag returns metas of all posts carrying the tag, matched case-insensitively
func (s *Service) ByTag(ctx context.Context, tag string) []BlogPostMeta {
	wantedTag := pkg.SlugifyTag(tag)

	taggedPosts := make([]BlogPostMeta, 0)
	for _, post := range s.All(ctx) {
		for _, postTag := range post.Tags {
			if pkg.SlugifyTag(postTag) == wantedTag {
				taggedPosts = append(taggedPosts, post.Meta())
				break
			}
		}
	}
	return taggedPosts
}

// Tags returns the deduplicated union of all post tags, sorted
func (s *Service) Tags(ctx context.Context) []string {
	tagsSet := make(map[string]string)
	for _, post := range s.All(ctx) {
		for _, tag := range post.Tags {
			tagsSet[pkg.SlugifyTag(tag)] = tag
		}
	}

	tags := make([]string, 0, len(tagsSet))
	for _, tag := range tagsSet {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	return tags
}

func (s *Service) transformPost(wpPost *wordpress.Post) BlogPost {
	author := wpPost.AuthorName()
	if author == "" {
		author = s.defaultAuthor
	}

	return BlogPost{
		ID:         wpPost.ID,
		Title:      html.UnescapeString(strings.TrimSpace(wpPost.Title.Rendered)),
		Slug:       wpPost.Slug,
		Excerpt:    excerptText(wpPost.Excerpt.Rendered),
		Content:    wpPost.Content.Rendered,
		Author:     author,
		CreatedAt:  wpPost.PublishedAt(),
		UpdatedAt:  wpPost.ModifiedAt(),
		Tags:       wpPost.TagNames(),
		Featured:   wpPost.Sticky,
		Published:  wpPost.Published(),
		CoverImage: wpPost.CoverImageURL(),
	}
}

// excerptText strips the markup from a rendered WP excerpt,
// including the trailing "continue reading" ellipsis marker
func excerptText(renderedExcerpt string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(renderedExcerpt))
	if err != nil {
		log.Errorf("parse excerpt html: %s", err)
		return strings.TrimSpace(renderedExcerpt)
	}

	text := strings.TrimSpace(doc.Text())
	text = strings.TrimSuffix(text, "[…]")

	return strings.TrimSpace(text)
}
