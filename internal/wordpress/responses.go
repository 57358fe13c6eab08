package wordpress

import (
	"time"
)

// WP core returns post dates without a zone, e.g. "2024-03-18T09:30:00"
const wpTimeLayout = "2006-01-02T15:04:05"

const taxonomyPostTag = "post_tag"

type Rendered struct {
	Rendered string `json:"rendered"`
}

type RenderedProtected struct {
	Rendered  string `json:"rendered"`
	Protected bool   `json:"protected"`
}

type EmbeddedAuthor struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Link string `json:"link"`
}

type EmbeddedMedia struct {
	ID        int    `json:"id"`
	SourceURL string `json:"source_url"`
	AltText   string `json:"alt_text"`
}

type EmbeddedTerm struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Taxonomy string `json:"taxonomy"`
}

type Embedded struct {
	Author        []EmbeddedAuthor `json:"author"`
	FeaturedMedia []EmbeddedMedia  `json:"wp:featuredmedia"`
	// outer slice is one entry per taxonomy (category, post_tag, ...)
	Terms [][]EmbeddedTerm `json:"wp:term"`
}

// Post is a single post as returned by GET /wp-json/wp/v2/posts?_embed
type Post struct {
	ID          int               `json:"id"`
	Date        string            `json:"date"`
	DateGMT     string            `json:"date_gmt"`
	Modified    string            `json:"modified"`
	ModifiedGMT string            `json:"modified_gmt"`
	Slug        string            `json:"slug"`
	Status      string            `json:"status"`
	Link        string            `json:"link"`
	Sticky      bool              `json:"sticky"`
	Title       Rendered          `json:"title"`
	Content     RenderedProtected `json:"content"`
	Excerpt     RenderedProtected `json:"excerpt"`
	Embedded    *Embedded         `json:"_embedded"`
}

func (p *Post) PublishedAt() time.Time {
	return parseWPTime(p.DateGMT, p.Date)
}

func (p *Post) ModifiedAt() time.Time {
	return parseWPTime(p.ModifiedGMT, p.Modified)
}

func (p *Post) Published() bool {
	return p.Status == "publish"
}

// AuthorName returns the embedded author display name, empty when not embedded
func (p *Post) AuthorName() string {
	if p.Embedded == nil || len(p.Embedded.Author) == 0 {
		return ""
	}
	return p.Embedded.Author[0].Name
}

// CoverImageURL returns the featured media source URL, empty when not set
func (p *Post) CoverImageURL() string {
	if p.Embedded == nil || len(p.Embedded.FeaturedMedia) == 0 {
		return ""
	}
	return p.Embedded.FeaturedMedia[0].SourceURL
}

// TagNames returns the names of all embedded post_tag terms
func (p *Post) TagNames() []string {
	if p.Embedded == nil {
		return nil
	}

	var tags []string
	for _, taxonomyTerms := range p.Embedded.Terms {
		for _, term := range taxonomyTerms {
			if term.Taxonomy == taxonomyPostTag && term.Name != "" {
				tags = append(tags, term.Name)
			}
		}
	}
	return tags
}

func parseWPTime(gmt, local string) time.Time {
	if t, err := time.Parse(wpTimeLayout, gmt); err == nil {
		return t.UTC()
	}
	if t, err := time.Parse(wpTimeLayout, local); err == nil {
		return t
	}
	return time.Time{}
}
